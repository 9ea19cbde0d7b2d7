package mtbank

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zmsync/go-mtbank-sync/internal/common"
)

func Test_classify(t *testing.T) {
	tests := []struct {
		name      string
		res       *apiResponse
		wantClass Classification
		wantMsg   string
	}{
		{
			name:      "success",
			res:       &apiResponse{Success: true, Data: json.RawMessage(`{}`)},
			wantClass: ClassSuccess,
		},
		{
			name: "account not owned by client is benign",
			res: &apiResponse{Error: &apiError{
				Description: "Счет 123 не принадлежит клиенту c кодом 42",
			}},
			wantClass: ClassBenignEmpty,
		},
		{
			name: "statement period before product activation is benign",
			res: &apiResponse{Error: &apiError{
				Description: "Дата запуска/внедрения попадает в период запрашиваемой выписки",
			}},
			wantClass: ClassBenignEmpty,
		},
		{
			name: "missing required fields is benign",
			res: &apiResponse{Error: &apiError{
				Description: "Получены не все обязательные поля",
			}},
			wantClass: ClassBenignEmpty,
		},
		{
			name: "wrong password is permanent",
			res: &apiResponse{Error: &apiError{
				Description: "Неверный пароль. Осталось попыток: 2",
			}},
			wantClass: ClassPermanentAuthFailure,
			wantMsg:   "Ответ банка: Неверный пароль. Осталось попыток: 2",
		},
		{
			name: "unknown error is transient",
			res: &apiResponse{Error: &apiError{
				Description: "Сервис временно недоступен",
			}},
			wantClass: ClassTransientFailure,
			wantMsg:   "Ответ банка: Сервис временно недоступен",
		},
		{
			name: "locked time is appended",
			res: &apiResponse{Error: &apiError{
				Description: "Учетная запись заблокирована на ",
				LockedTime:  "30 минут",
			}},
			wantClass: ClassTransientFailure,
			wantMsg:   "Ответ банка: Учетная запись заблокирована на 30 минут",
		},
		{
			name: "literal null locked time is ignored",
			res: &apiResponse{Error: &apiError{
				Description: "Учетная запись заблокирована",
				LockedTime:  "null",
			}},
			wantClass: ClassTransientFailure,
			wantMsg:   "Ответ банка: Учетная запись заблокирована",
		},
		{
			name:      "missing error shape is transient",
			res:       &apiResponse{},
			wantClass: ClassTransientFailure,
		},
		{
			name:      "nil response is transient",
			res:       nil,
			wantClass: ClassTransientFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, err := classify(tt.res)
			assert.Equal(t, tt.wantClass, class)

			switch tt.wantClass {
			case ClassSuccess, ClassBenignEmpty:
				assert.NoError(t, err)
			case ClassPermanentAuthFailure:
				assert.True(t, common.IsInvalidPreferences(err))
			case ClassTransientFailure:
				assert.True(t, common.IsTemporary(err))
			}

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
