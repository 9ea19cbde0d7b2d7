// Package transformer maps raw bank operations and products onto the
// canonical account/transaction model: movement building, cash-deposit
// splitting, payee extraction and the regex-based product converters.
package transformer

import (
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// Rule annotates a freshly converted transaction from its raw operation.
// Apply returns true when the rule claims the operation exclusively; the
// remaining rules are then skipped. Registry order is the documented
// precedence: the cash-deposit split runs before payee extraction because a
// deposit comment is not a merchant.
type Rule interface {
	Apply(tx *models.Transaction, op models.Operation) bool
}

// rules is the ordered annotation chain applied to every transaction.
var rules = []Rule{
	cashDepositRule{},
	payeeRule{},
}

func applyRules(tx *models.Transaction, op models.Operation) {
	for _, rule := range rules {
		if rule.Apply(tx, op) {
			return
		}
	}
}
