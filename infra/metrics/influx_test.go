package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/billpay/core/metrics"
	"github.com/kilianp07/billpay/core/model"
)

func TestInfluxSink_RecordEvaluation(t *testing.T) {
	var body, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	ev := coremetrics.Evaluation{
		ReceiptID: "r-1",
		Category:  "Internet",
		Record:    model.BillRecord{AmountAvailable: 22, AmountOwed: 23},
		Paid:      false,
		Time:      time.Unix(1700000000, 0),
	}
	require.NoError(t, sink.RecordEvaluation([]coremetrics.Evaluation{ev}))

	assert.Equal(t, "/api/v2/write", path)
	assert.Contains(t, body, "bill_evaluation,category=Internet,paid=false ")
	assert.Contains(t, body, "amount_available=22i")
	assert.Contains(t, body, "amount_owed=23i")
	assert.Contains(t, body, "shortfall=1")
	assert.Contains(t, body, `receipt_id="r-1"`)
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL+"/api/v2/write", "tok", "org", "bucket")
	assert.IsType(t, coremetrics.NopSink{}, sink)
	assert.True(t, called, "health endpoint not called")
}
