package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zmsync/go-mtbank-sync/internal/common/log"
	"github.com/zmsync/go-mtbank-sync/internal/common/metrics"
)

const sanitizedPlaceholder = "<sanitized>"

// SanitizeOptions declares which parts of a request/response are sensitive.
// Matching JSON keys are masked at any nesting depth before the payload
// reaches the log surface; the payloads sent over the wire are untouched.
type SanitizeOptions struct {
	RequestBodyKeys  []string
	ResponseBodyKeys []string
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

func (w *RequestWrapper) DoRequest(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request, sanitize SanitizeOptions) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []log.Field{
		log.String("url", url),
		log.String("method", method),
	}

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	log.Info(ctx, w.logPrefix, append(logFields,
		log.String("message", "send request"),
		log.Any("requestBody", sanitizeBody(req.Body, sanitize.RequestBodyKeys)))...)

	var httpRes *resty.Response
	var err error

	switch method {
	case resty.MethodGet:
		httpRes, err = req.Get(url)
	case resty.MethodPost:
		httpRes, err = req.Post(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		log.Warn(ctx, w.logPrefix, append(logFields, log.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			w.serviceName,
			method,
			url,
			httpRes.StatusCode(),
		)
	}

	logFields = append(logFields,
		log.String("httpStatusCode", httpRes.Status()),
		log.Any("httpResponse", sanitizeBody(httpRes.Body(), sanitize.ResponseBodyKeys)))

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		log.Warn(ctx, w.logPrefix, logFields...)
	} else {
		log.Debug(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}

// sanitizeBody masks the given JSON keys wherever they occur in body. Bodies
// that are not JSON objects/arrays are passed through unchanged.
func sanitizeBody(body interface{}, keys []string) interface{} {
	if body == nil || len(keys) == 0 {
		return body
	}

	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return sanitizedPlaceholder
		}
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return string(raw)
	}

	masked := map[string]bool{}
	for _, k := range keys {
		masked[k] = true
	}

	return maskKeys(decoded, masked)
}

func maskKeys(value interface{}, masked map[string]bool) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, inner := range v {
			if masked[key] {
				v[key] = sanitizedPlaceholder
				continue
			}
			v[key] = maskKeys(inner, masked)
		}
		return v
	case []interface{}:
		for i, inner := range v {
			v[i] = maskKeys(inner, masked)
		}
		return v
	default:
		return value
	}
}
