package mtbank

import (
	"strings"

	"github.com/zmsync/go-mtbank-sync/internal/common"
)

// Classification is the verdict on one decoded API response. The bank signals
// failures only through free-text descriptions, so classification is
// conservative: anything unrecognized is transient, never silently dropped.
type Classification int

const (
	ClassSuccess Classification = iota
	// ClassBenignEmpty is a non-success response that means "no data for
	// this window", not a failure.
	ClassBenignEmpty
	ClassPermanentAuthFailure
	ClassTransientFailure
)

// descriptionPatterns maps known description substrings to a verdict. New
// bank phrasings are added here, not in control flow.
var descriptionPatterns = []struct {
	substr string
	class  Classification
}{
	{"не принадлежит клиенту c кодом", ClassBenignEmpty},
	{"Дата запуска/внедрения попадает в период запрашиваемой выписки", ClassBenignEmpty},
	{"Получены не все обязательные поля", ClassBenignEmpty},
	{"Неверный пароль", ClassPermanentAuthFailure},
}

// classify inspects a decoded response body. The returned error is non-nil
// only for the failure classes: an InvalidPreferencesError for permanent
// credential failures, a TemporaryError otherwise.
func classify(res *apiResponse) (Classification, error) {
	if res == nil {
		return ClassTransientFailure, common.NewTemporaryError(common.ErrMissingResponseBody.Error())
	}

	if res.Success {
		return ClassSuccess, nil
	}

	if res.Error == nil || res.Error.Description == "" {
		return ClassTransientFailure, common.NewTemporaryError("non-successful response")
	}

	for _, p := range descriptionPatterns {
		if !strings.Contains(res.Error.Description, p.substr) {
			continue
		}
		switch p.class {
		case ClassBenignEmpty:
			return ClassBenignEmpty, nil
		case ClassPermanentAuthFailure:
			return ClassPermanentAuthFailure, common.NewInvalidPreferencesError(bankErrorMessage(res.Error))
		}
	}

	return ClassTransientFailure, common.NewTemporaryError(bankErrorMessage(res.Error))
}

func bankErrorMessage(e *apiError) string {
	msg := common.BankResponsePrefix + e.Description
	if e.LockedTime != "" && e.LockedTime != "null" {
		msg += e.LockedTime
	}
	return msg
}
