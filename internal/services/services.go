package services

import (
	"github.com/zmsync/go-mtbank-sync/internal/config"
	"github.com/zmsync/go-mtbank-sync/internal/mtbank"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	authenticator *mtbank.Authenticator
	fetcher       *mtbank.Fetcher

	common service

	Sync *syncer
}

func New(
	conf config.Config,
	authenticator *mtbank.Authenticator,
	fetcher *mtbank.Fetcher,
) *Services {
	srv := &Services{
		conf:          conf,
		authenticator: authenticator,
		fetcher:       fetcher,
	}
	srv.common = service{srv: srv}

	srv.Sync = (*syncer)(&srv.common)

	return srv
}
