// Package service is the boundary the presentation layer calls: it builds
// the argument list for one report request, runs hledger, and decodes the
// result. Every request is independent pure computation over its own
// payload; the service holds no report state.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/juev/hledger-viewer/internal/cli"
	"github.com/juev/hledger-viewer/internal/hledger"
)

type Service struct {
	client *cli.Client
	logger *zap.Logger
}

func New(client *cli.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Balance runs `hledger balance` and decodes either balance shape.
func (s *Service) Balance(ctx context.Context, journal string, opts hledger.BalanceOptions) (hledger.BalanceReport, error) {
	out, err := s.runJSON(ctx, journal, "balance", opts.Args())
	if err != nil {
		return nil, err
	}
	return hledger.DecodeBalance(out)
}

// BalanceSheet runs `hledger balancesheet`.
func (s *Service) BalanceSheet(ctx context.Context, journal string, opts hledger.CompoundOptions) (*hledger.CompoundReport, error) {
	return s.compound(ctx, journal, "balancesheet", opts)
}

// IncomeStatement runs `hledger incomestatement`.
func (s *Service) IncomeStatement(ctx context.Context, journal string, opts hledger.CompoundOptions) (*hledger.CompoundReport, error) {
	return s.compound(ctx, journal, "incomestatement", opts)
}

// Cashflow runs `hledger cashflow`.
func (s *Service) Cashflow(ctx context.Context, journal string, opts hledger.CompoundOptions) (*hledger.CompoundReport, error) {
	return s.compound(ctx, journal, "cashflow", opts)
}

func (s *Service) compound(ctx context.Context, journal, command string, opts hledger.CompoundOptions) (*hledger.CompoundReport, error) {
	out, err := s.runJSON(ctx, journal, command, opts.Args())
	if err != nil {
		return nil, err
	}
	return hledger.DecodeCompound(out)
}

// Transactions runs `hledger print` and decodes the transaction listing.
func (s *Service) Transactions(ctx context.Context, journal string, opts hledger.PrintOptions) ([]hledger.Transaction, error) {
	out, err := s.runJSON(ctx, journal, "print", opts.Args())
	if err != nil {
		return nil, err
	}
	return hledger.DecodeTransactions(out)
}

// Accounts runs `hledger accounts`. The listing is plain text, one
// account per line; no JSON flag is passed.
func (s *Service) Accounts(ctx context.Context, journal string, opts hledger.AccountsOptions) ([]string, error) {
	args := append([]string{"accounts"}, opts.Args()...)
	out, err := s.client.Run(ctx, journal, args...)
	if err != nil {
		s.logger.Warn("accounts request failed", zap.Error(err))
		return nil, err
	}
	return hledger.ParseAccounts(string(out)), nil
}

func (s *Service) runJSON(ctx context.Context, journal, command string, optArgs []string) ([]byte, error) {
	args := make([]string, 0, len(optArgs)+3)
	args = append(args, command, "--output-format", "json")
	args = append(args, optArgs...)
	out, err := s.client.Run(ctx, journal, args...)
	if err != nil {
		s.logger.Warn("report request failed",
			zap.String("command", command),
			zap.Error(err))
		return nil, err
	}
	s.logger.Debug("report received",
		zap.String("command", command),
		zap.Int("bytes", len(out)))
	return out, nil
}
