package transformer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

func bynCard() models.Account {
	return models.Account{
		ID:         "3014000000001",
		Type:       models.AccountTypeCard,
		Instrument: "BYN",
	}
}

func TestConvertTransaction_Purchase(t *testing.T) {
	op := models.Operation{
		AccountID:         "3014000000001",
		TransDate:         "07.08.2026",
		Date:              "07.08.2026",
		Time:              "12:30:45",
		Status:            "operResultOk",
		DebitFlag:         "-",
		OperationSum:      "15.20",
		OperationCurrency: "BYN",
		Place:             "SHOP PINSK/PINSK/BY",
	}

	tx, err := ConvertTransaction(op, bynCard())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 7, 12, 30, 45, 0, common.MinskTime), tx.Date)
	assert.False(t, tx.Hold)
	require.Len(t, tx.Movements, 1)

	movement := tx.Movements[0]
	assert.Equal(t, "3014000000001", movement.Account.ID)
	assert.True(t, movement.Sum.Equal(decimal.RequireFromString("-15.20")), "got %s", movement.Sum)
	assert.True(t, movement.Fee.IsZero())
	assert.Nil(t, movement.Invoice)

	require.NotNil(t, tx.Comment)
	assert.Equal(t, "SHOP PINSK", *tx.Comment)
}

func TestConvertTransaction_Hold(t *testing.T) {
	op := models.Operation{
		Date:              "07.08.2026",
		Time:              "12:30:45",
		Status:            "operResultPending",
		DebitFlag:         "-",
		OperationSum:      "3.50",
		OperationCurrency: "BYN",
	}

	tx, err := ConvertTransaction(op, bynCard())
	require.NoError(t, err)
	assert.True(t, tx.Hold)
}

func TestConvertTransaction_ForeignCurrencyInvoice(t *testing.T) {
	op := models.Operation{
		Date:              "07.08.2026",
		Time:              "09:00:00",
		Status:            "operResultOk",
		DebitFlag:         "-",
		OperationSum:      "32.11",
		OperationCurrency: "USD",
		InAccountSum:      "10.00",
	}

	tx, err := ConvertTransaction(op, bynCard())
	require.NoError(t, err)
	require.Len(t, tx.Movements, 1)

	movement := tx.Movements[0]
	assert.True(t, movement.Sum.Equal(decimal.RequireFromString("-32.11")), "got %s", movement.Sum)

	require.NotNil(t, movement.Invoice)
	assert.Equal(t, "USD", movement.Invoice.Instrument)
	assert.True(t, movement.Invoice.Sum.Equal(decimal.RequireFromString("-10.00")), "got %s", movement.Invoice.Sum)
}

func TestConvertTransaction_CashDeposit(t *testing.T) {
	op := models.Operation{
		Date:              "07.08.2026",
		Time:              "10:15:00",
		Status:            "operResultOk",
		DebitFlag:         "+",
		OperationSum:      "100.00",
		OperationCurrency: "BYN",
		Comment:           "Пополнение счета наличными",
		Place:             "OTD 12/MINSK/BY",
	}

	tx, err := ConvertTransaction(op, bynCard())
	require.NoError(t, err)
	require.Len(t, tx.Movements, 2)

	primary, cash := tx.Movements[0], tx.Movements[1]
	assert.True(t, primary.Sum.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, models.AccountTypeCash, cash.Account.Type)
	assert.Equal(t, "BYN", cash.Account.Instrument)
	assert.True(t, cash.Sum.Equal(primary.Sum.Neg()), "cash leg %s must offset %s", cash.Sum, primary.Sum)

	// the cash-deposit rule is exclusive: the place field stays unused
	assert.Nil(t, tx.Comment)
}

func TestConvertTransaction_NoPlace(t *testing.T) {
	op := models.Operation{
		Date:              "07.08.2026",
		Time:              "10:15:00",
		Status:            "operResultOk",
		DebitFlag:         "-",
		OperationSum:      "1.00",
		OperationCurrency: "BYN",
	}

	tx, err := ConvertTransaction(op, bynCard())
	require.NoError(t, err)
	assert.Nil(t, tx.Comment)
}

func TestConvertTransaction_BadInput(t *testing.T) {
	tests := []struct {
		name string
		op   models.Operation
	}{
		{
			name: "unparseable date",
			op:   models.Operation{Date: "garbage", Time: "??", OperationSum: "1.00", OperationCurrency: "BYN"},
		},
		{
			name: "unparseable sum",
			op:   models.Operation{Date: "07.08.2026", Time: "10:00:00", OperationSum: "n/a", OperationCurrency: "BYN"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertTransaction(tt.op, bynCard())
			assert.Error(t, err)
		})
	}
}
