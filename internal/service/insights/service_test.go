package insights

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/pkg/clients/anthropic"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func sample() ([]models.ProductionEntry, models.FinancialSummary) {
	entries := []models.ProductionEntry{
		{Seamstress: "Maria Silva", Product: "Mochila", Quantity: 10, Total: decimal.RequireFromString("30")},
	}
	summary := models.FinancialSummary{
		TotalProductionCost: decimal.RequireFromString("30"),
		TotalPieces:         10,
		SeamstressCount:     1,
	}
	return entries, summary
}

func TestSummarizeReturnsModelText(t *testing.T) {
	gen := &stubGenerator{reply: "  **Maria** lidera.  "}
	svc := NewService(gen, nil)
	entries, summary := sample()

	text, err := svc.Summarize(context.Background(), entries, summary)
	require.NoError(t, err)
	assert.Equal(t, "**Maria** lidera.", text)

	assert.Contains(t, gen.prompt, `"costureiro":"Maria Silva"`)
	assert.Contains(t, gen.prompt, `"q":10`)
	assert.Contains(t, gen.prompt, "Folha Total: R$ 30.00")
	assert.Contains(t, gen.prompt, "Número de Costureiros: 1")
}

func TestSummarizeFailureStrings(t *testing.T) {
	entries, summary := sample()

	text, err := NewService(&stubGenerator{err: errors.New("timeout")}, nil).Summarize(context.Background(), entries, summary)
	require.NoError(t, err)
	assert.Equal(t, ConnectionFailure, text)

	text, err = NewService(&stubGenerator{reply: " "}, nil).Summarize(context.Background(), entries, summary)
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, text)
}

func TestSummarizeWithoutGenerator(t *testing.T) {
	svc := NewService(nil, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Summarize(context.Background(), nil, models.FinancialSummary{})
	assert.ErrorIs(t, err, ErrNoGenerator)
}

func TestBuildPromptEmptyLedger(t *testing.T) {
	prompt := BuildPrompt(nil, models.FinancialSummary{})
	assert.Contains(t, prompt, "DADOS DE PRODUÇÃO:\n[]")
	assert.Contains(t, prompt, "Folha Total: R$ 0.00")
}

func TestSummarizeAnthropicReplies(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "text", status: http.StatusOK, body: `{"content":[{"type":"text","text":"Maria lidera."}]}`, want: "Maria lidera."},
		{name: "blank text", status: http.StatusOK, body: `{"content":[{"type":"text","text":"  "}]}`, want: EmptyReply},
		{name: "no content", status: http.StatusOK, body: `{"content":[]}`, want: EmptyReply},
		{name: "api error", status: http.StatusInternalServerError, body: `{"error":{"type":"api_error","message":"overloaded"}}`, want: ConnectionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := NewService(anthropic.NewClient("key", "", anthropic.WithEndpoint(srv.URL)), nil)
			entries, summary := sample()

			text, err := svc.Summarize(context.Background(), entries, summary)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}
