package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical ledger entry produced by one raw bank
// operation. It carries one movement for the fetched account and, for cash
// deposits, a second synthetic movement for the offsetting cash leg.
type Transaction struct {
	Date      time.Time  `json:"date"`
	Movements []Movement `json:"movements"`
	Merchant  *Merchant  `json:"merchant"`
	Comment   *string    `json:"comment"`
	Hold      bool       `json:"hold"`
}

// Movement is one leg of a transaction's monetary effect. Sum is always
// expressed in the owning account's instrument; Invoice records the amount in
// the operation's native currency when the two differ.
type Movement struct {
	Account AccountRef      `json:"account"`
	Invoice *Invoice        `json:"invoice"`
	Sum     decimal.Decimal `json:"sum"`
	Fee     decimal.Decimal `json:"fee"`
}

// AccountRef points a movement at a real account by id, or at a virtual one
// (type/instrument only) for synthetic legs such as cash.
type AccountRef struct {
	ID         string      `json:"id,omitempty"`
	Type       AccountType `json:"type,omitempty"`
	Instrument string      `json:"instrument,omitempty"`
}

type Invoice struct {
	Sum        decimal.Decimal `json:"sum"`
	Instrument string          `json:"instrument"`
}

type Merchant struct {
	MCC       *int    `json:"mcc"`
	Location  *string `json:"location"`
	FullTitle string  `json:"fullTitle"`
}
