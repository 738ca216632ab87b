package service

import (
	"log/slog"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/store"
)

type Service struct {
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *slog.Logger, opts ...ledger.Option) *Service {
	return &Service{
		Transaction: NewTransactionService(repo, logger, opts...),
		Config:      cfg,
	}
}
