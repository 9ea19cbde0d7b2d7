package transformer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// cash deposits are recognized only by this comment phrase
const cashDepositMarker = "Пополнение счета"

// cashDepositRule splits a recognized cash deposit into two legs: the
// account movement already built, plus a synthetic offsetting movement on a
// virtual cash account. The cash leg's sum is always the negation of the
// primary leg's.
type cashDepositRule struct{}

func (cashDepositRule) Apply(tx *models.Transaction, op models.Operation) bool {
	if !strings.Contains(op.Comment, cashDepositMarker) {
		return false
	}

	primary := tx.Movements[0]
	tx.Movements = append(tx.Movements, models.Movement{
		Account: models.AccountRef{
			Type:       models.AccountTypeCash,
			Instrument: op.OperationCurrency,
		},
		Sum: primary.Sum.Neg(),
		Fee: decimal.Zero,
	})
	return true
}
