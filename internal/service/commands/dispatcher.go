package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
	"github.com/mamadbah2/sewmaster/internal/service/reporting"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not yet support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

const rankingSize = 5

// HelpText lists the supported chat commands.
const HelpText = "Comandos disponíveis:\n" +
	"/producao <qtd> <produto> <nome> - registra produção\n" +
	"/resumo - resumo financeiro\n" +
	"/ranking - top 5 por peças\n" +
	"/pendente <nome> - valores a pagar\n" +
	"/projecao - projeção do mês"

var usage = map[models.CommandType]string{
	models.CommandProduction: "Uso: /producao <qtd> <produto> <nome>, ex: /producao 10 Mochila Maria Silva",
	models.CommandPending:    "Uso: /pendente <nome>, ex: /pendente Maria",
}

// Workshop is the part of the store the dispatcher writes to.
type Workshop interface {
	AddProduction(ctx context.Context, in models.ProductionInput) (models.ProductionEntry, error)
	Catalog() []models.ProductCatalog
	Now() time.Time
}

// Reporter renders the query commands.
type Reporter interface {
	SummaryText() string
	RankingText(n int) string
	ProjectionText(now time.Time) string
	PendingText(name string) string
}

// Dispatcher executes parsed chat commands.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	workshop  Workshop
	reporting Reporter
	logger    *zap.Logger
}

// NewService constructs a command dispatcher.
func NewService(workshop Workshop, reporting Reporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		workshop:  workshop,
		reporting: reporting,
		logger:    logger,
	}
}

// Usage returns the usage hint of a command, or the help text.
func Usage(t models.CommandType) string {
	if u, ok := usage[t]; ok {
		return u
	}
	return HelpText
}

// HandleCommand runs cmd and returns the reply text.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandProduction:
		return s.recordProduction(ctx, cmd)
	case models.CommandSummary:
		return s.reporting.SummaryText(), nil
	case models.CommandRanking:
		return s.reporting.RankingText(rankingSize), nil
	case models.CommandPending:
		if len(cmd.Args) == 0 {
			return "", fmt.Errorf("%w: worker name is required", ErrInvalidArguments)
		}
		return s.reporting.PendingText(strings.Join(cmd.Args, " ")), nil
	case models.CommandProjection:
		return s.reporting.ProjectionText(s.workshop.Now()), nil
	case models.CommandUnknown:
		return HelpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

func (s *Service) recordProduction(ctx context.Context, cmd models.Command) (string, error) {
	in, err := s.buildProductionInput(cmd)
	if err != nil {
		return "", err
	}

	entry, err := s.workshop.AddProduction(ctx, in)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	return fmt.Sprintf("Produção registrada: %s, %dx %s = %s (pendente).",
		entry.Seamstress, entry.Quantity, entry.Product, reporting.FormatBRL(entry.Total)), nil
}

// buildProductionInput reads "<qty> <product> <name...>". The product is the
// longest catalog name matching the leading tokens; what follows is the
// worker name.
func (s *Service) buildProductionInput(cmd models.Command) (models.ProductionInput, error) {
	if len(cmd.Args) < 3 {
		return models.ProductionInput{}, fmt.Errorf("%w: expected quantity, product and name", ErrInvalidArguments)
	}

	quantity, err := strconv.Atoi(cmd.Args[0])
	if err != nil || quantity <= 0 {
		return models.ProductionInput{}, fmt.Errorf("%w: quantity %q", ErrInvalidArguments, cmd.Args[0])
	}

	rest := cmd.Args[1:]
	product, used, ok := matchProduct(s.workshop.Catalog(), rest)
	if !ok {
		return models.ProductionInput{}, fmt.Errorf("%w: product %q is not in the catalog", ErrInvalidArguments, rest[0])
	}

	return models.ProductionInput{
		Seamstress: strings.Join(rest[used:], " "),
		Product:    product.Name,
		Quantity:   quantity,
		UnitValue:  product.ProductionPrice,
	}, nil
}

// matchProduct finds the catalog product whose name spans the most leading
// tokens while leaving at least one token for the worker name.
func matchProduct(catalog []models.ProductCatalog, tokens []string) (models.ProductCatalog, int, bool) {
	var (
		best     models.ProductCatalog
		bestUsed int
	)
	for _, p := range catalog {
		n := len(strings.Fields(p.Name))
		if n == 0 || n >= len(tokens) || n <= bestUsed {
			continue
		}
		if names.Key(strings.Join(tokens[:n], " ")) == names.Key(p.Name) {
			best, bestUsed = p, n
		}
	}
	return best, bestUsed, bestUsed > 0
}
