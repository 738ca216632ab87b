package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/ledger"
)

// JSONStore keeps the ledger as a single JSON array in a flat file.
type JSONStore struct {
	path   string
	logger *slog.Logger
}

func NewJSONStore(path string, logger *slog.Logger) *JSONStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{path: path, logger: logger}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the whole file. A missing file is the first-run state and
// yields an empty sequence.
func (s *JSONStore) Load(ctx context.Context) ([]ledger.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("ledger file not found, starting empty", "path", s.path)
			return []ledger.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger file %s: %w", s.path, err)
	}

	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedLedger, s.path, err)
	}

	txs, err := fromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedLedger, s.path, err)
	}

	s.logger.Debug("loaded ledger", "path", s.path, "count", len(txs))
	return txs, nil
}

// Save truncates the file and writes the full sequence. There is no
// rename swap, so a crash mid-write can leave a partial file.
func (s *JSONStore) Save(ctx context.Context, txs []ledger.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(toRecords(txs), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("can not create ledger directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file for writing: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	s.logger.Debug("saved ledger", "path", s.path, "count", len(txs))
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
