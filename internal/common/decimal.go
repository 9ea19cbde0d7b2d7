package common

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var amountSpaceRe = regexp.MustCompile(`\s`)

// NewDecimalFromBankString parses a bank amount string, tolerating the
// thousands-separator spaces the API emits ("1 234.50").
func NewDecimalFromBankString(data string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountSpaceRe.ReplaceAllString(data, ""))
}

// SignedAmount converts a raw amount string into a signed decimal: credit
// ('+' debit flag) is positive, debit is negative.
func SignedAmount(debitFlag, strAmount string) (decimal.Decimal, error) {
	amount, err := NewDecimalFromBankString(strAmount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if debitFlag == "+" {
		return amount, nil
	}
	return amount.Neg(), nil
}
