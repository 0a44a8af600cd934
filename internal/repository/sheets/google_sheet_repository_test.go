package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

type recordedCall struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func newTestRepository(t *testing.T, status int) (*GoogleSheetRepository, *[]recordedCall) {
	t.Helper()
	calls := &[]recordedCall{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recordedCall{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		_ = json.NewDecoder(r.Body).Decode(&call.body)
		*calls = append(*calls, call)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	svc, err := sheetsapi.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return &GoogleSheetRepository{service: svc, spreadsheetID: "sheet-id", logger: zap.NewNop()}, calls
}

func TestReplaceSheetClearsThenWrites(t *testing.T) {
	repo, calls := newTestRepository(t, http.StatusOK)

	rows := [][]interface{}{{"Data", "Costureira"}, {"01/06/2024", "Maria Silva"}}
	require.NoError(t, repo.ReplaceSheet(context.Background(), "Relatorio", rows))

	require.Len(t, *calls, 2)
	clearCall, updateCall := (*calls)[0], (*calls)[1]

	assert.Equal(t, http.MethodPost, clearCall.method)
	assert.True(t, strings.HasSuffix(clearCall.path, ":clear"), clearCall.path)
	assert.Contains(t, clearCall.path, "/spreadsheets/sheet-id/values/Relatorio")

	assert.Equal(t, http.MethodPut, updateCall.method)
	assert.Contains(t, updateCall.path, "Relatorio!A1")
	assert.Contains(t, updateCall.query, "valueInputOption=USER_ENTERED")
	assert.Len(t, updateCall.body["values"], 2)
}

func TestReplaceSheetErrors(t *testing.T) {
	repo, calls := newTestRepository(t, http.StatusForbidden)

	err := repo.ReplaceSheet(context.Background(), "Relatorio", nil)
	assert.ErrorContains(t, err, "clear sheet Relatorio")
	assert.Len(t, *calls, 1)

	assert.Error(t, repo.ReplaceSheet(context.Background(), "", nil))
}
