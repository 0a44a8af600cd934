// Package insights asks a language model for a short management analysis of
// the production ledger. The reply is opaque prose shown as-is.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// ErrNoGenerator is returned when no AI provider is configured.
var ErrNoGenerator = errors.New("no ai provider configured")

// Replies used when the model cannot produce an analysis.
const (
	ConnectionFailure = "Erro ao conectar com a IA."
	EmptyReply        = "Não foi possível gerar insights no momento."
)

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds the consultant prompt and calls the configured model.
type Service struct {
	generator Generator
	logger    *zap.Logger
}

// NewService wires an insights service. A nil generator disables it.
func NewService(generator Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{generator: generator, logger: logger}
}

// Enabled reports whether a model is configured.
func (s *Service) Enabled() bool {
	return s.generator != nil
}

// Summarize returns the model's analysis of entries. Transport failures and
// empty replies are not errors: they yield the fixed Portuguese messages.
func (s *Service) Summarize(ctx context.Context, entries []models.ProductionEntry, summary models.FinancialSummary) (string, error) {
	if s.generator == nil {
		return "", ErrNoGenerator
	}

	text, err := s.generator.Generate(ctx, BuildPrompt(entries, summary))
	if err != nil {
		s.logger.Error("insights generation failed", zap.Error(err))
		return ConnectionFailure, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyReply, nil
	}
	return text, nil
}

type promptEntry struct {
	Seamstress string          `json:"costureiro"`
	Product    string          `json:"produto"`
	Quantity   int             `json:"q"`
	Total      decimal.Decimal `json:"valor_total"`
}

// BuildPrompt renders the consultant prompt for a ledger view.
func BuildPrompt(entries []models.ProductionEntry, summary models.FinancialSummary) string {
	rows := make([]promptEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, promptEntry{Seamstress: e.Seamstress, Product: e.Product, Quantity: e.Quantity, Total: e.Total})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		data = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("Atue como um consultor de gestão de produção têxtil.\n")
	b.WriteString("Analise os dados de produção do meu ateliê e forneça insights acionáveis sobre os pagamentos e produtividade da equipe.\n\n")
	b.WriteString("DADOS DE PRODUÇÃO:\n")
	b.Write(data)
	b.WriteString("\n\nRESUMO:\n")
	fmt.Fprintf(&b, "Folha Total: R$ %s\n", summary.TotalProductionCost.StringFixed(2))
	fmt.Fprintf(&b, "Peças Produzidas: %d\n", summary.TotalPieces)
	fmt.Fprintf(&b, "Número de Costureiros: %d\n\n", summary.SeamstressCount)
	b.WriteString("POR FAVOR FORNEÇA:\n")
	b.WriteString("1. Quem é o colaborador mais produtivo e por quê.\n")
	b.WriteString("2. Análise de custo médio por peça.\n")
	b.WriteString("3. Sugestão para melhorar o fluxo de trabalho ou controle de custos.\n")
	b.WriteString("Use Markdown curto e direto ao ponto.\n")
	return b.String()
}
