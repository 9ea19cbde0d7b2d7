package setup

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/common/httpclient"
	"github.com/zmsync/go-mtbank-sync/internal/common/log"
	cMetrics "github.com/zmsync/go-mtbank-sync/internal/common/metrics"
	"github.com/zmsync/go-mtbank-sync/internal/common/retry"
	"github.com/zmsync/go-mtbank-sync/internal/config"
	"github.com/zmsync/go-mtbank-sync/internal/mtbank"
	"github.com/zmsync/go-mtbank-sync/internal/services"
)

type Setup struct {
	Config  config.Config
	Metrics cMetrics.Metrics
	Service *services.Services
}

// Init loads configuration, initializes logging and metrics and wires the
// bank client into the service layer.
func Init(command, cfgFile string) (*Setup, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if validationErrs := common.ValidateStruct(cfg); len(validationErrs) > 0 {
		return nil, fmt.Errorf("invalid config: %s (%s)", validationErrs[0].Field, validationErrs[0].Message)
	}

	logOpts := []log.Option{log.WithLevel(cfg.App.LogLevel)}
	if config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
		logOpts = append(logOpts, log.WithConsole())
	}
	log.Init(cfg.App.Name+"-"+command, logOpts...)

	mtc := cMetrics.New()

	// session cookies are threaded explicitly between login steps, so the
	// automatic cookie jar must stay out of the way
	restyClient := resty.New().
		SetTimeout(cfg.Bank.HTTPTimeout).
		SetHeader("User-Agent", cfg.App.Name).
		SetCookieJar(nil)

	wrapper := httpclient.NewRequestWrapper(restyClient, mtc, "mtbank", "[MTBANK-API]")
	client := mtbank.NewClient(cfg.Bank, wrapper)

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	srv := services.New(
		cfg,
		mtbank.NewAuthenticator(client),
		mtbank.NewFetcher(client, cfg.Bank, retryer),
	)

	return &Setup{
		Config:  cfg,
		Metrics: mtc,
		Service: srv,
	}, nil
}

// Close flushes anything buffered at shutdown.
func (s *Setup) Close() {
	log.Sync()
}
