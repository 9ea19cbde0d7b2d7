package mtbank

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

func TestFetcher_FetchAccounts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/loadUser", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "JSESSIONID=s;;TS01=t;", r.Header.Get("Cookie"))
		writeRawJSON(w, `{"success":true,"data":{"products":[
			{"id":"0001","type":"card","currency":"BYN","balance":"15.20","cardNum":"****1234","productType":"3"}
		]}}`)
	})

	client := newTestClient(t, mux)
	fetcher := NewFetcher(client, client.cfg, newTestRetryer())

	products, err := fetcher.FetchAccounts(context.Background(), Session{Cookie: "JSESSIONID=s;;TS01=t;"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "0001", products[0].ID)
	assert.Equal(t, "card", products[0].Type)
}

func TestFetcher_FetchAccounts_MissingProducts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/loadUser", func(w http.ResponseWriter, r *http.Request) {
		writeRawJSON(w, `{"success":true,"data":{}}`)
	})

	client := newTestClient(t, mux)
	fetcher := NewFetcher(client, client.cfg, newTestRetryer())

	_, err := fetcher.FetchAccounts(context.Background(), Session{})
	assert.True(t, common.IsTemporary(err))
}

func TestFetcher_FetchTransactions(t *testing.T) {
	fromDate := time.Date(2026, 8, 5, 0, 0, 0, 0, common.MinskTime)
	toDate := time.Date(2026, 8, 10, 0, 0, 0, 0, common.MinskTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/product/loadOperationStatements", func(w http.ResponseWriter, r *http.Request) {
		var req statementRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.ContractCode == "broken" {
			writeRawJSON(w, `{"success":false,"error":{"description":"Сервис временно недоступен"}}`)
			return
		}

		writeRawJSON(w, `{"success":true,"data":[{"accountId":"0001","operations":[
			{"transDate":"07.08.2026","date":"07.08.2026","time":"12:30:45","status":"operResultOk",
			 "debitFlag":"-","operationSum":"15.20","operationCurrency":"BYN","description":"Оплата","comment":"Оплата товара"},
			{"transDate":"07.08.2026","date":"07.08.2026","time":"13:00:00","status":"E",
			 "debitFlag":"-","operationSum":"1.00","operationCurrency":"BYN","description":"","comment":""},
			{"transDate":"05.08.2026","date":"05.08.2026","time":"00:00:00","status":"operResultOk",
			 "debitFlag":"+","operationSum":"5.00","operationCurrency":"BYN","description":"","comment":""},
			{"transDate":"06.08.2026","date":"06.08.2026","time":"10:00:00","status":"operResultOk",
			 "debitFlag":"-","operationSum":"2.00","operationCurrency":"BYN",
			 "description":"Гашение кредита в виде \"овердрафт\" по договору 1","comment":""}
		]}]}`)
	})

	client := newTestClient(t, mux)
	fetcher := NewFetcher(client, client.cfg, newTestRetryer())

	products := []models.Product{
		{ID: "0001", Type: "card", ProductType: "3"},
		{ID: "broken", Type: "card", ProductType: "3"},
	}

	batch, err := fetcher.FetchTransactions(context.Background(), Session{}, products, fromDate, toDate)
	require.NoError(t, err)

	// one window per product: the broken one is skipped, not fatal
	require.Len(t, batch.Skipped, 1)
	assert.Contains(t, batch.Skipped[0].Error(), "Ответ банка: Сервис временно недоступен")

	// status E, boundary-date and overdraft-repayment operations are dropped
	require.Len(t, batch.Operations, 1)
	op := batch.Operations[0]
	assert.Equal(t, "0001", op.AccountID)
	assert.Equal(t, "07.08.2026", op.TransDate)
	assert.Equal(t, "15.20", op.OperationSum)
}

func TestFetcher_FetchTransactions_BenignEmptyWindow(t *testing.T) {
	fromDate := time.Date(2026, 8, 5, 0, 0, 0, 0, common.MinskTime)
	toDate := time.Date(2026, 8, 7, 0, 0, 0, 0, common.MinskTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/product/loadOperationStatements", func(w http.ResponseWriter, r *http.Request) {
		writeRawJSON(w, `{"success":false,"error":{"description":"Счет не принадлежит клиенту c кодом 42"}}`)
	})

	client := newTestClient(t, mux)
	fetcher := NewFetcher(client, client.cfg, newTestRetryer())

	batch, err := fetcher.FetchTransactions(context.Background(), Session{},
		[]models.Product{{ID: "0001", ProductType: "3"}}, fromDate, toDate)
	require.NoError(t, err)
	assert.Empty(t, batch.Operations)
	assert.Empty(t, batch.Skipped)
}

func TestFetcher_FetchTransactions_EmptyRange(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())
	fetcher := NewFetcher(client, client.cfg, newTestRetryer())

	now := time.Now()
	_, err := fetcher.FetchTransactions(context.Background(), Session{}, nil, now, now)
	assert.ErrorIs(t, err, common.ErrEmptyDateRange)
}
