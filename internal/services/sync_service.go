package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zmsync/go-mtbank-sync/internal/common/log"
	"github.com/zmsync/go-mtbank-sync/internal/models"
	"github.com/zmsync/go-mtbank-sync/internal/mtbank"
	"github.com/zmsync/go-mtbank-sync/internal/services/transformer"
)

type SyncService interface {
	// Sync runs one full synchronization: login, account load, statement
	// fan-out, normalization. Authentication failures abort the run; partial
	// statement failures only reduce completeness.
	Sync(ctx context.Context, creds mtbank.Credentials, fromDate, toDate time.Time) (models.SyncResult, error)
}

type syncer service

var _ SyncService = (*syncer)(nil)

func (s *syncer) Sync(ctx context.Context, creds mtbank.Credentials, fromDate, toDate time.Time) (out models.SyncResult, err error) {
	ctx = log.WithFields(ctx, log.String("sync_run_id", uuid.NewString()))

	session, err := s.srv.authenticator.Login(ctx, creds)
	if err != nil {
		return out, err
	}

	products, err := s.srv.fetcher.FetchAccounts(ctx, session)
	if err != nil {
		return out, err
	}

	accounts, err := transformer.ConvertAccounts(products)
	if err != nil {
		return out, err
	}

	batch, err := s.srv.fetcher.FetchTransactions(ctx, session, products, fromDate, toDate)
	if err != nil {
		return out, err
	}

	transactions := make([]models.Transaction, 0, len(batch.Operations))
	for _, op := range batch.Operations {
		account, ok := resolveAccount(accounts, op.AccountID)
		if !ok {
			log.Warn(ctx, "operation references unknown account", log.String("account_id", op.AccountID))
			continue
		}

		tx, cerr := transformer.ConvertTransaction(op, account)
		if cerr != nil {
			log.Warn(ctx, "failed to convert operation", log.Err(cerr))
			continue
		}
		transactions = append(transactions, tx)
	}

	out = models.SyncResult{
		Accounts:     accounts,
		Transactions: transactions,
	}
	for _, skipped := range batch.Skipped {
		out.Skipped = append(out.Skipped, skipped.Error())
	}

	log.Info(ctx, "sync finished",
		log.Int("accounts", len(out.Accounts)),
		log.Int("transactions", len(out.Transactions)),
		log.Int("skipped_windows", len(out.Skipped)))

	return out, nil
}

// resolveAccount finds the canonical account an operation belongs to by any
// of its bank-issued identifiers.
func resolveAccount(accounts []models.Account, accountID string) (models.Account, bool) {
	for _, account := range accounts {
		if account.HasSyncID(accountID) {
			return account, true
		}
	}
	return models.Account{}, false
}
