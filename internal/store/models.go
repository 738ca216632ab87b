package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/ledger"
	"github.com/shopspring/decimal"
)

// transactionRecord is the on-disk shape of one transaction.
type transactionRecord struct {
	ID          int64        `json:"id"`
	Amount      amountNumber `json:"amount"`
	Category    string       `json:"category"`
	Type        ledger.Kind  `json:"transaction_type"`
	TimeStamp   time.Time    `json:"time_stamp"`
	Description string       `json:"description"`
}

// amountNumber holds the exact decimal text of an amount. It is written as
// a bare JSON number and only a JSON number is accepted back.
type amountNumber string

func (a amountNumber) MarshalJSON() ([]byte, error) {
	if _, err := decimal.NewFromString(string(a)); err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", string(a), err)
	}
	return []byte(a), nil
}

func (a *amountNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("amount must be a JSON number, got %s", data)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = amountNumber(n)
	return nil
}

func toRecords(txs []ledger.Transaction) []transactionRecord {
	records := make([]transactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, transactionRecord{
			ID:          tx.ID,
			Amount:      amountNumber(tx.Amount.String()),
			Category:    tx.Category,
			Type:        tx.Kind,
			TimeStamp:   tx.Timestamp.UTC(),
			Description: tx.Description,
		})
	}
	return records
}

func fromRecords(records []transactionRecord) ([]ledger.Transaction, error) {
	txs := make([]ledger.Transaction, 0, len(records))
	for i, rec := range records {
		if !rec.Type.Valid() {
			return nil, fmt.Errorf("record #%d: invalid transaction type %q", i+1, string(rec.Type))
		}
		amount, err := decimal.NewFromString(string(rec.Amount))
		if err != nil {
			return nil, fmt.Errorf("record #%d: invalid amount %q: %w", i+1, string(rec.Amount), err)
		}
		txs = append(txs, ledger.Transaction{
			ID:          rec.ID,
			Amount:      amount,
			Category:    rec.Category,
			Kind:        rec.Type,
			Timestamp:   rec.TimeStamp.UTC(),
			Description: rec.Description,
		})
	}
	return txs, nil
}
