package models

// Product is one entry of the raw product list returned by user/loadUser.
// Deposit metadata arrives as free text in Details; card numbers arrive
// masked in CardNum.
type Product struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
	Balance     string `json:"balance"`
	CardNum     string `json:"cardNum"`
	Details     string `json:"details"`
	ProductType string `json:"productType"`
}

// Operation statuses as the bank reports them.
const (
	OperationStatusOk    = "operResultOk"
	OperationStatusError = "E"
)

// Operation is a bank-native transaction record from
// product/loadOperationStatements. Amounts are locale-formatted strings;
// dates are bank-local without an offset. AccountID is stamped by the fetcher
// from the statement block the operation arrived in.
type Operation struct {
	AccountID         string `json:"accountId"`
	TransDate         string `json:"transDate"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Status            string `json:"status"`
	DebitFlag         string `json:"debitFlag"`
	OperationSum      string `json:"operationSum"`
	OperationCurrency string `json:"operationCurrency"`
	InAccountSum      string `json:"inAccountSum"`
	Description       string `json:"description"`
	Comment           string `json:"comment"`
	Place             string `json:"place"`
}
