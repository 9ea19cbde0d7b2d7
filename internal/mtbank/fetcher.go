package mtbank

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/common/dateutil"
	"github.com/zmsync/go-mtbank-sync/internal/common/httpclient"
	"github.com/zmsync/go-mtbank-sync/internal/common/log"
	"github.com/zmsync/go-mtbank-sync/internal/common/retry"
	"github.com/zmsync/go-mtbank-sync/internal/config"
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// overdraft auto-repayments are bank bookkeeping, not user activity
const overdraftRepaymentMarker = `Гашение кредита в виде "овердрафт" по договору`

// StatementBatch is the flattened result of one statement fan-out. Skipped
// lists the account×window pairs dropped after exhausting retries; they
// degrade completeness but never fail the batch.
type StatementBatch struct {
	Operations []models.Operation
	Skipped    []error
}

type Fetcher struct {
	client  *Client
	cfg     config.Bank
	retryer retry.Retryer
}

func NewFetcher(client *Client, cfg config.Bank, retryer retry.Retryer) *Fetcher {
	return &Fetcher{client: client, cfg: cfg, retryer: retryer}
}

// FetchAccounts loads the raw product list for the session.
func (f *Fetcher) FetchAccounts(ctx context.Context, session Session) ([]models.Product, error) {
	log.Info(ctx, "loading account list")

	res, _, err := f.client.getJSON(ctx, pathLoadUser, session.Cookie)
	if err != nil {
		return nil, err
	}

	if _, cerr := classify(res); cerr != nil {
		return nil, cerr
	}

	var data loadUserData
	if res.Data == nil || json.Unmarshal(res.Data, &data) != nil || data.Products == nil {
		return nil, common.NewTemporaryError(common.ErrMissingProductsData.Error())
	}

	return data.Products, nil
}

// FetchTransactions retrieves operations for every product across
// [fromDate, toDate), fanning out one bounded-window request per
// product×interval pair. In-flight requests are capped by configuration;
// a failing window is retried with backoff and then skipped, never aborting
// its siblings. Output order is unspecified.
func (f *Fetcher) FetchTransactions(ctx context.Context, session Session, products []models.Product, fromDate, toDate time.Time) (StatementBatch, error) {
	if toDate.IsZero() {
		toDate = time.Now()
	}

	intervals := dateutil.CreateDateIntervals(fromDate, toDate, f.cfg.StatementWindow(), f.cfg.StatementGap)
	if len(intervals) == 0 {
		return StatementBatch{}, common.ErrEmptyDateRange
	}

	log.Info(ctx, "loading operation statements",
		log.Int("accounts", len(products)),
		log.Int("windows", len(intervals)))

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		batch StatementBatch
		sem   = semaphore.NewWeighted(f.cfg.MaxInFlightRequests)
	)

	for _, product := range products {
		for _, interval := range intervals {
			wg.Add(1)
			go func(product models.Product, interval dateutil.DateInterval) {
				defer wg.Done()

				if err := sem.Acquire(ctx, 1); err != nil {
					return
				}
				defer sem.Release(1)

				ops, err := f.fetchStatementWindow(ctx, session, product, interval)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					batch.Skipped = append(batch.Skipped, err)
					return
				}
				batch.Operations = append(batch.Operations, ops...)
			}(product, interval)
		}
	}
	wg.Wait()

	if len(batch.Skipped) > 0 {
		log.Warn(ctx, "some statement windows skipped",
			log.Int("skipped", len(batch.Skipped)),
			log.Err(multierror.Append(nil, batch.Skipped...)))
	}

	batch.Operations = filterOperations(batch.Operations, fromDate)

	log.Info(ctx, "operation statements loaded", log.Int("operations", len(batch.Operations)))
	return batch, nil
}

// fetchStatementWindow issues one paginated statement call, retrying
// transient bank failures. A benign-empty verdict yields no operations and
// no error.
func (f *Fetcher) fetchStatementWindow(ctx context.Context, session Session, product models.Product, interval dateutil.DateInterval) ([]models.Operation, error) {
	body := statementRequest{
		ContractCode:    product.ID,
		AccountIdenType: product.ProductType,
		StartDate:       common.FormatStatementDate(interval.Start),
		EndDate:         common.FormatStatementDate(interval.End),
		Halva:           false,
	}

	var statements []accountStatement
	operation := func() error {
		res, _, err := f.client.postJSON(ctx, pathOperationStatements, body, session.Cookie, httpclient.SanitizeOptions{})
		if err != nil {
			return err
		}

		class, cerr := classify(res)
		switch class {
		case ClassBenignEmpty:
			statements = nil
			return nil
		case ClassPermanentAuthFailure:
			return f.retryer.StopRetryWithErr(cerr)
		case ClassTransientFailure:
			return cerr
		}

		if res.Data == nil {
			return common.NewTemporaryError(common.ErrMissingResponseBody.Error())
		}
		if err := json.Unmarshal(res.Data, &statements); err != nil {
			return common.NewTemporaryError("failed to decode statements: " + err.Error())
		}
		return nil
	}

	if err := f.retryer.Retry(ctx, operation); err != nil {
		return nil, common.WrapError{
			Causer: "statement window " + body.StartDate + " for " + product.ID,
			Err:    err,
		}
	}

	var ops []models.Operation
	for _, statement := range statements {
		for _, op := range statement.Operations {
			op.AccountID = statement.AccountID
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// filterOperations drops terminal-error operations, operations dated at or
// before fromDate (the sync cursor already has them) and overdraft
// auto-repayments.
func filterOperations(ops []models.Operation, fromDate time.Time) []models.Operation {
	var filtered []models.Operation
	for _, op := range ops {
		if op.Status == models.OperationStatusError {
			continue
		}
		if strings.Contains(op.Description, overdraftRepaymentMarker) {
			continue
		}

		opDate, err := common.ParseBankDate(op.TransDate)
		if err != nil || !opDate.After(fromDate) {
			continue
		}

		filtered = append(filtered, op)
	}
	return filtered
}
