package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeDeposit AccountType = "deposit"
	AccountTypeCard    AccountType = "card"
	AccountTypeCash    AccountType = "cash"
)

// Account is the canonical account shape handed to the host aggregator.
// Built once per sync run from the raw product list and immutable after that.
type Account struct {
	ID         string          `json:"id"`
	Type       AccountType     `json:"type"`
	Title      string          `json:"title"`
	Instrument string          `json:"instrument"`
	Balance    decimal.Decimal `json:"balance"`

	// SyncIDs holds every bank-issued identifier an operation may reference
	// this account by (full contract id, masked card suffix).
	SyncIDs []string `json:"syncID"`

	// deposit attributes
	Capitalization        bool            `json:"capitalization,omitempty"`
	Percent               decimal.Decimal `json:"percent,omitempty"`
	StartDate             time.Time       `json:"startDate,omitempty"`
	EndDateOffset         int             `json:"endDateOffset,omitempty"`
	EndDateOffsetInterval string          `json:"endDateOffsetInterval,omitempty"`
	PayoffStep            int             `json:"payoffStep,omitempty"`
	PayoffInterval        string          `json:"payoffInterval,omitempty"`
}

// HasSyncID reports whether id is one of the account's bank-issued
// identifiers.
func (a Account) HasSyncID(id string) bool {
	for _, syncID := range a.SyncIDs {
		if syncID == id {
			return true
		}
	}
	return false
}
