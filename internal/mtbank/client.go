// Package mtbank is the client for MTBank's private MyBank web API: the
// login handshake, account and statement retrieval, and the classification
// of the bank's free-text error responses.
package mtbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/common/httpclient"
	"github.com/zmsync/go-mtbank-sync/internal/config"
)

// API paths, relative to the configured base URL.
const (
	pathUserIdentityByPhone = "login/userIdentityByPhone"
	pathCheckPassword       = "login/checkPassword"
	pathUserRole            = "user/userRole"
	pathLoadUser            = "user/loadUser"
	pathOperationStatements = "product/loadOperationStatements"
)

type Client struct {
	cfg     config.Bank
	wrapper *httpclient.RequestWrapper
}

func NewClient(cfg config.Bank, wrapper *httpclient.RequestWrapper) *Client {
	return &Client{cfg: cfg, wrapper: wrapper}
}

// call performs one API request and decodes the response envelope. Transport
// and decode failures come back as TemporaryError; classification of the
// envelope itself is the caller's concern.
func (c *Client) call(ctx context.Context, method, path string, body interface{}, cookie string, sanitize httpclient.SanitizeOptions) (*apiResponse, http.Header, error) {
	reqFunc := func(req *resty.Request) *resty.Request {
		req = req.SetHeader("Content-Type", "application/json")
		if cookie != "" {
			req = req.SetHeader("Cookie", cookie)
		}
		if body != nil {
			req = req.SetBody(body)
		}
		return req
	}

	httpRes, err := c.wrapper.DoRequest(ctx, method, c.cfg.BaseURL+path, reqFunc, sanitize)
	if err != nil {
		return nil, nil, common.NewTemporaryError(err.Error())
	}

	var res apiResponse
	if err := json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, httpRes.Header(), common.NewTemporaryError(fmt.Sprintf("failed to decode response: %v", err))
	}

	return &res, httpRes.Header(), nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, cookie string, sanitize httpclient.SanitizeOptions) (*apiResponse, http.Header, error) {
	return c.call(ctx, resty.MethodPost, path, body, cookie, sanitize)
}

func (c *Client) getJSON(ctx context.Context, path, cookie string) (*apiResponse, http.Header, error) {
	return c.call(ctx, resty.MethodGet, path, nil, cookie, httpclient.SanitizeOptions{})
}
