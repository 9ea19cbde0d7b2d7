package transformer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// ConvertTransaction maps one raw operation plus its resolved account into
// the canonical transaction shape.
func ConvertTransaction(op models.Operation, account models.Account) (models.Transaction, error) {
	date, err := common.ParseBankDateTime(op.Date + " " + op.Time)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to parse operation date: %w", err)
	}

	movement, err := getMovement(op, account)
	if err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		Date:      date,
		Movements: []models.Movement{movement},
		Hold:      op.Status != models.OperationStatusOk,
	}

	applyRules(&tx, op)

	return tx, nil
}

// getMovement builds the primary movement: the signed sum in the account's
// instrument, plus an invoice in the operation currency when the two differ.
func getMovement(op models.Operation, account models.Account) (models.Movement, error) {
	sum, err := common.SignedAmount(op.DebitFlag, op.OperationSum)
	if err != nil {
		return models.Movement{}, fmt.Errorf("failed to parse operation sum %q: %w", op.OperationSum, err)
	}

	movement := models.Movement{
		Account: models.AccountRef{ID: account.ID},
		Sum:     sum,
		Fee:     decimal.Zero,
	}

	if op.OperationCurrency != account.Instrument {
		invoiceSum, err := common.SignedAmount(op.DebitFlag, op.InAccountSum)
		if err != nil {
			return models.Movement{}, fmt.Errorf("failed to parse in-account sum %q: %w", op.InAccountSum, err)
		}
		movement.Invoice = &models.Invoice{
			Sum:        invoiceSum,
			Instrument: op.OperationCurrency,
		}
	}

	return movement, nil
}
