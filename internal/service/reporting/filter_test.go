package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

func ids(entries []models.ProductionEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestApplyWithoutCriteriaReturnsAllInOrder(t *testing.T) {
	entries := sampleLedger()
	assert.Equal(t, ids(entries), ids(Apply(entries, models.Filter{})))
}

func TestApplySingleDay(t *testing.T) {
	got := Apply(sampleLedger(), models.Filter{StartDate: "2024-06-02", EndDate: "2024-06-02"})
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestApplyDateRangeIsInclusive(t *testing.T) {
	got := Apply(sampleLedger(), models.Filter{StartDate: "2024-05-30", EndDate: "2024-06-01"})
	assert.Equal(t, []string{"1", "5"}, ids(got))
}

func TestApplyNameAndStatus(t *testing.T) {
	entries := sampleLedger()

	assert.Equal(t, []string{"1", "3"}, ids(Apply(entries, models.Filter{NameSubstring: "MARIA"})))
	assert.Equal(t, []string{"2", "3"}, ids(Apply(entries, models.Filter{Status: models.StatusOnlyPaid})))
	assert.Equal(t, []string{"1"}, ids(Apply(entries, models.Filter{NameSubstring: "silva", Status: models.StatusOnlyPending})))
	assert.Equal(t, []string{"5"}, ids(Apply(entries, models.Filter{NameSubstring: "souza", Status: "pendente"})))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	entries := sampleLedger()
	before := ids(entries)

	_ = Apply(entries, models.Filter{Status: models.StatusOnlyPaid})
	assert.Equal(t, before, ids(entries))
}

func TestNormalizeFilter(t *testing.T) {
	f, err := NormalizeFilter(models.Filter{StartDate: " 2024-06-01 ", Status: "todos", NameSubstring: " ana "})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", f.StartDate)
	assert.Equal(t, models.StatusAny, f.Status)
	assert.Equal(t, "ana", f.NameSubstring)

	_, err = NormalizeFilter(models.Filter{EndDate: "01/06/2024"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = NormalizeFilter(models.Filter{Status: "late"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestReportTotalsTheFilteredView(t *testing.T) {
	r := Report(sampleLedger(), models.Filter{NameSubstring: "ana"})
	require.Len(t, r.Entries, 2)
	assert.Equal(t, 22, r.Summary.TotalPieces)
	assert.Equal(t, "30.00", r.Summary.TotalPaid.StringFixed(2))
	assert.Equal(t, "6.00", r.Summary.TotalPending.StringFixed(2))
}
