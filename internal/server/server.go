// Package server is the stdio JSON-RPC bridge between the decoding core
// and the desktop shell. Each method maps to one report request or one
// hierarchy computation; the bridge itself holds no report state.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/juev/hledger-viewer/internal/hierarchy"
	"github.com/juev/hledger-viewer/internal/hledger"
	"github.com/juev/hledger-viewer/internal/service"
)

type Server struct {
	svc     *service.Service
	guard   *service.SequenceGuard
	logger  *zap.Logger
	journal string
}

// New builds a bridge over svc. journal is the default journal file,
// used when a request does not name one.
func New(svc *service.Service, journal string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		svc:     svc,
		guard:   service.NewSequenceGuard(),
		logger:  logger,
		journal: journal,
	}
}

type reportParams struct {
	Journal string `json:"journal,omitempty"`
	// Panel identifies the view issuing the request; concurrent requests
	// for the same panel are sequenced so stale responses are marked.
	Panel string `json:"panel,omitempty"`

	Balance  *hledger.BalanceOptions  `json:"balance,omitempty"`
	Compound *hledger.CompoundOptions `json:"compound,omitempty"`
	Print    *hledger.PrintOptions    `json:"print,omitempty"`
	Accounts *hledger.AccountsOptions `json:"accounts,omitempty"`
}

// balanceResult is the explicit tagged form of the balance sum type on
// the wire: exactly one of the two fields is set.
type balanceResult struct {
	Simple   *hledger.SimpleBalance   `json:"simple,omitempty"`
	Periodic *hledger.PeriodicBalance `json:"periodic,omitempty"`
}

type reportEnvelope struct {
	Seq    uint64      `json:"seq"`
	Stale  bool        `json:"stale"`
	Report interface{} `json:"report,omitempty"`
}

type hierarchyParams struct {
	Rows     []hierarchy.Row `json:"rows"`
	Mode     string          `json:"mode"`
	Expanded []string        `json:"expanded"`
}

// Handler dispatches bridge methods.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		result, err := s.dispatch(ctx, req)
		if err != nil {
			s.logger.Warn("request failed",
				zap.String("method", req.Method()),
				zap.Error(err))
		}
		return reply(ctx, result, err)
	}
}

func (s *Server) dispatch(ctx context.Context, req jsonrpc2.Request) (interface{}, error) {
	switch req.Method() {
	case "ledger/balance":
		return s.handleBalance(ctx, req.Params())
	case "ledger/balanceSheet":
		return s.handleCompound(ctx, req.Params(), s.svc.BalanceSheet)
	case "ledger/incomeStatement":
		return s.handleCompound(ctx, req.Params(), s.svc.IncomeStatement)
	case "ledger/cashflow":
		return s.handleCompound(ctx, req.Params(), s.svc.Cashflow)
	case "ledger/transactions":
		return s.handleTransactions(ctx, req.Params())
	case "ledger/accounts":
		return s.handleAccounts(ctx, req.Params())
	case "hierarchy/compute":
		return s.handleHierarchy(req.Params())
	default:
		return nil, jsonrpc2.ErrMethodNotFound
	}
}

func (s *Server) handleBalance(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	params, err := s.decodeParams(raw)
	if err != nil {
		return nil, err
	}
	var opts hledger.BalanceOptions
	if params.Balance != nil {
		opts = *params.Balance
	}
	seq := s.guard.Next(params.Panel)
	report, err := s.svc.Balance(ctx, s.journalFor(params), opts)
	if err != nil {
		return nil, err
	}
	result := balanceResult{}
	switch r := report.(type) {
	case *hledger.SimpleBalance:
		result.Simple = r
	case *hledger.PeriodicBalance:
		result.Periodic = r
	}
	return s.envelope(params.Panel, seq, result), nil
}

func (s *Server) handleCompound(
	ctx context.Context,
	raw json.RawMessage,
	run func(context.Context, string, hledger.CompoundOptions) (*hledger.CompoundReport, error),
) (interface{}, error) {
	params, err := s.decodeParams(raw)
	if err != nil {
		return nil, err
	}
	var opts hledger.CompoundOptions
	if params.Compound != nil {
		opts = *params.Compound
	}
	seq := s.guard.Next(params.Panel)
	report, err := run(ctx, s.journalFor(params), opts)
	if err != nil {
		return nil, err
	}
	return s.envelope(params.Panel, seq, report), nil
}

func (s *Server) handleTransactions(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	params, err := s.decodeParams(raw)
	if err != nil {
		return nil, err
	}
	var opts hledger.PrintOptions
	if params.Print != nil {
		opts = *params.Print
	}
	seq := s.guard.Next(params.Panel)
	transactions, err := s.svc.Transactions(ctx, s.journalFor(params), opts)
	if err != nil {
		return nil, err
	}
	return s.envelope(params.Panel, seq, transactions), nil
}

func (s *Server) handleAccounts(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	params, err := s.decodeParams(raw)
	if err != nil {
		return nil, err
	}
	var opts hledger.AccountsOptions
	if params.Accounts != nil {
		opts = *params.Accounts
	}
	seq := s.guard.Next(params.Panel)
	accounts, err := s.svc.Accounts(ctx, s.journalFor(params), opts)
	if err != nil {
		return nil, err
	}
	return s.envelope(params.Panel, seq, accounts), nil
}

func (s *Server) handleHierarchy(raw json.RawMessage) (interface{}, error) {
	var params hierarchyParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
		}
	}
	expanded := make(map[string]bool, len(params.Expanded))
	for _, name := range params.Expanded {
		expanded[name] = true
	}
	return hierarchy.Compute(params.Rows, hierarchy.ParseMode(params.Mode), expanded), nil
}

func (s *Server) decodeParams(raw json.RawMessage) (reportParams, error) {
	var params reportParams
	if len(raw) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return params, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	return params, nil
}

func (s *Server) journalFor(params reportParams) string {
	if params.Journal != "" {
		return params.Journal
	}
	return s.journal
}

func (s *Server) envelope(panel string, seq uint64, report interface{}) reportEnvelope {
	env := reportEnvelope{Seq: seq, Report: report}
	if panel != "" && !s.guard.Deliver(panel, seq) {
		// A newer request for this panel already delivered; the shell
		// must drop this result instead of overwriting newer state.
		env.Stale = true
		env.Report = nil
	}
	return env
}
