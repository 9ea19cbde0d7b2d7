package models

// SyncResult is the one-batch-per-run payload handed back to the host:
// canonical accounts and transactions, plus the windows that were skipped
// after exhausting retries. Skipped degrades completeness only; it never
// fails the run.
type SyncResult struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Skipped      []string      `json:"skipped,omitempty"`
}
