package transformer

import (
	"strings"

	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// payeeRule lifts the merchant name out of the slash-delimited place field
// into the transaction comment. The merchant record itself (mcc, location)
// stays empty: the source field is too unreliable to populate it.
type payeeRule struct{}

func (payeeRule) Apply(tx *models.Transaction, op models.Operation) bool {
	// internet payments carry no place and stay without a payee
	if op.Place == "" {
		return false
	}

	segments := strings.Split(op.Place, "/")
	if len(segments) == 0 {
		return false
	}

	comment := segments[0]
	tx.Comment = &comment
	return true
}
