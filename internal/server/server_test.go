package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"

	"github.com/juev/hledger-viewer/internal/cli"
	"github.com/juev/hledger-viewer/internal/hierarchy"
	"github.com/juev/hledger-viewer/internal/service"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	svc := service.New(cli.NewClient("/nonexistent/hledger-binary", time.Second), nil)
	return New(svc, "", nil)
}

// call runs one request through the handler and captures the reply.
func call(t *testing.T, srv *Server, method string, params interface{}) (interface{}, error) {
	t.Helper()
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), method, params)
	require.NoError(t, err)

	var result interface{}
	var replyErr error
	handlerErr := srv.Handler()(context.Background(), func(_ context.Context, res interface{}, err error) error {
		result = res
		replyErr = err
		return nil
	}, req)
	require.NoError(t, handlerErr)
	return result, replyErr
}

func TestServer_UnknownMethod(t *testing.T) {
	_, err := call(t, testServer(t), "ledger/unknown", nil)
	assert.ErrorIs(t, err, jsonrpc2.ErrMethodNotFound)
}

func TestServer_InvalidParams(t *testing.T) {
	_, err := call(t, testServer(t), "ledger/balance", json.RawMessage(`{"journal":42}`))
	assert.ErrorIs(t, err, jsonrpc2.ErrInvalidParams)
}

// Report methods need the hledger process; its failure comes back as the
// reply error, not a transport failure.
func TestServer_ReportClientError(t *testing.T) {
	srv := testServer(t)
	for _, method := range []string{
		"ledger/balance",
		"ledger/balanceSheet",
		"ledger/incomeStatement",
		"ledger/cashflow",
		"ledger/transactions",
		"ledger/accounts",
	} {
		t.Run(method, func(t *testing.T) {
			result, err := call(t, srv, method, reportParams{Panel: "main"})
			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

// Hierarchy computation is local; it works with no hledger installed.
func TestServer_HierarchyCompute(t *testing.T) {
	params := hierarchyParams{
		Rows: []hierarchy.Row{
			{Name: "assets", Indent: 0, Explicit: true},
			{Name: "assets:bank", Indent: 1, Explicit: true},
			{Name: "expenses", Indent: 0, Explicit: true},
		},
		Mode:     "tree",
		Expanded: []string{"assets"},
	}

	result, err := call(t, testServer(t), "hierarchy/compute", params)
	require.NoError(t, err)

	nodes, ok := result.([]hierarchy.Node)
	require.True(t, ok)
	require.Len(t, nodes, 3)
	assert.True(t, nodes[0].Visible)
	assert.True(t, nodes[1].Visible)
	assert.True(t, nodes[0].HasChildren)
	assert.False(t, nodes[1].HasChildren)
}

func TestServer_HierarchyEmptyParams(t *testing.T) {
	result, err := call(t, testServer(t), "hierarchy/compute", hierarchyParams{})
	require.NoError(t, err)
	nodes, ok := result.([]hierarchy.Node)
	require.True(t, ok)
	assert.Empty(t, nodes)
}

func TestServer_EnvelopeStale(t *testing.T) {
	srv := testServer(t)

	first := srv.guard.Next("main")
	second := srv.guard.Next("main")

	newest := srv.envelope("main", second, "new")
	assert.False(t, newest.Stale)
	assert.Equal(t, "new", newest.Report)

	late := srv.envelope("main", first, "old")
	assert.True(t, late.Stale)
	assert.Nil(t, late.Report)
}

func TestServer_EnvelopeNoPanel(t *testing.T) {
	srv := testServer(t)
	env := srv.envelope("", 0, "report")
	assert.False(t, env.Stale)
	assert.Equal(t, "report", env.Report)
}

func TestServer_JournalFallback(t *testing.T) {
	svc := service.New(cli.NewClient("/nonexistent/hledger-binary", time.Second), nil)
	srv := New(svc, "/default.journal", nil)

	assert.Equal(t, "/default.journal", srv.journalFor(reportParams{}))
	assert.Equal(t, "/request.journal", srv.journalFor(reportParams{Journal: "/request.journal"}))
}
