package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatBRL renders an amount the way the workshop reads it: "R$ 1.234,50".
// This is the only place amounts are rounded.
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), frac)
}

// FormatDate turns YYYY-MM-DD into DD/MM/YYYY without parsing it as an instant.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// MonthName returns the Portuguese month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// RenderSummary formats the dashboard cards as chat text.
func RenderSummary(s models.FinancialSummary) string {
	return fmt.Sprintf("Resumo de pagamentos\nA pagar: %s (%d colaboradores)\nJá pago: %s\nProdução: %d peças\nFolha total: %s",
		FormatBRL(s.TotalPending), s.SeamstressCount, FormatBRL(s.TotalPaid), s.TotalPieces, FormatBRL(s.TotalProductionCost))
}

// RenderRanking formats the first n ranked workers; n <= 0 renders all.
func RenderRanking(ranked []models.RankedWorker, n int) string {
	if len(ranked) == 0 {
		return "Nenhum dado para exibir no ranking."
	}
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	var b strings.Builder
	b.WriteString("Top produtividade (peças)")
	for _, r := range ranked {
		fmt.Fprintf(&b, "\n%d. %s: %d peças (%s)", r.Position, r.DisplayName, r.TotalQuantity, FormatBRL(r.TotalValue))
	}
	return b.String()
}

// RenderProjection formats the month run rate.
func RenderProjection(p models.Projection) string {
	return fmt.Sprintf("Estimativa para %s: %s\nProdução atual: %s em %d dias (média diária %s)\nFaltam %d dias; mantendo o ritmo serão necessários %s extras.",
		MonthName(p.Month), FormatBRL(p.ProjectedTotal), FormatBRL(p.TotalCurrentMonth), p.DayOfMonth,
		FormatBRL(p.DailyAverage), p.DaysRemaining, FormatBRL(p.RemainingNeeded))
}

// RenderStatement formats the pending entries of one worker.
func RenderStatement(name string, report models.ProductionReport) string {
	if len(report.Entries) == 0 {
		return fmt.Sprintf("Nenhum lançamento pendente para %s.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s pendente", name, FormatBRL(report.Summary.TotalPending))
	for _, e := range report.Entries {
		fmt.Fprintf(&b, "\n%s %s x%d = %s", FormatDate(e.Date), e.Product, e.Quantity, FormatBRL(e.Total))
	}
	return b.String()
}

// RenderWeeklyReport formats the scheduled payment report.
func RenderWeeklyReport(r models.WeeklyReport) string {
	var b strings.Builder
	b.WriteString(RenderSummary(r.Summary))

	pending := SortByPending(r.Workers)
	if len(pending) > 0 && pending[0].Pending.IsPositive() {
		b.WriteString("\n\nPendências")
		for _, w := range pending {
			if !w.Pending.IsPositive() {
				break
			}
			fmt.Fprintf(&b, "\n- %s: %s", w.DisplayName, FormatBRL(w.Pending))
		}
	}

	if r.Leader != nil {
		fmt.Fprintf(&b, "\n\nDestaque: %s com %d peças.", r.Leader.DisplayName, r.Leader.TotalQuantity)
	}

	b.WriteString("\n\n")
	b.WriteString(RenderProjection(r.Projection))
	return b.String()
}
