package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validInput() models.ProductionInput {
	return models.ProductionInput{
		Date:       "2024-05-10",
		Seamstress: " maria  SILVA ",
		Product:    "Mochila",
		Quantity:   10,
		UnitValue:  dec("3.00"),
	}
}

func TestAddComputesTotalAndDefaults(t *testing.T) {
	l := New(nil)

	entry, err := l.Add(validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Maria Silva", entry.Seamstress)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.Equal(t, "30.00", entry.Total.StringFixed(2))
	assert.True(t, entry.Total.Equal(entry.UnitValue.Mul(decimal.NewFromInt(int64(entry.Quantity)))))
}

func TestAddIgnoresInputStatus(t *testing.T) {
	l := New(nil)
	in := validInput()
	in.Status = models.StatusPaid

	entry, err := l.Add(in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, entry.Status)
}

func TestAddPrependsAndAssignsUniqueIDs(t *testing.T) {
	l := New(nil)

	first, err := l.Add(validInput())
	require.NoError(t, err)
	in := validInput()
	in.Product = "Estojo"
	second, err := l.Add(in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	mutations := map[string]func(*models.ProductionInput){
		"blank name":    func(in *models.ProductionInput) { in.Seamstress = "   " },
		"blank product": func(in *models.ProductionInput) { in.Product = "" },
		"zero quantity": func(in *models.ProductionInput) { in.Quantity = 0 },
		"negative qty":  func(in *models.ProductionInput) { in.Quantity = -3 },
		"zero price":    func(in *models.ProductionInput) { in.UnitValue = decimal.Zero },
		"bad date":      func(in *models.ProductionInput) { in.Date = "10/05/2024" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			l := New(nil)
			in := validInput()
			mutate(&in)

			_, err := l.Add(in)
			assert.ErrorIs(t, err, ErrInvalidEntry)
			assert.Equal(t, 0, l.Len())
		})
	}
}

func TestUpdateRecomputesTotal(t *testing.T) {
	l := New(nil)
	entry, err := l.Add(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Seamstress = "JOÃO souza"
	in.Quantity = 4
	in.UnitValue = dec("2.25")

	updated, ok, err := l.Update(entry.ID, in)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, "João Souza", updated.Seamstress)
	assert.Equal(t, "9.00", updated.Total.StringFixed(2))
	assert.Equal(t, models.StatusPending, updated.Status)

	stored, ok := l.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, updated, stored)
}

func TestUpdateCanSetStatus(t *testing.T) {
	l := New(nil)
	entry, err := l.Add(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Status = "pago"
	updated, ok, err := l.Update(entry.ID, in)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, updated.Status)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	l := New(nil)
	_, err := l.Add(validInput())
	require.NoError(t, err)
	before := l.Entries()

	_, ok, err := l.Update("missing", validInput())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, l.Entries())
}

func TestToggleStatusIsItsOwnInverse(t *testing.T) {
	l := New(nil)
	entry, err := l.Add(validInput())
	require.NoError(t, err)

	toggled, ok := l.ToggleStatus(entry.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, toggled.Status)

	back, ok := l.ToggleStatus(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry.Status, back.Status)

	_, ok = l.ToggleStatus("missing")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	l := New(nil)
	entry, err := l.Add(validInput())
	require.NoError(t, err)

	assert.False(t, l.Remove("missing"))
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Remove(entry.ID))
	assert.Equal(t, 0, l.Len())
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := New(nil)
	_, err := l.Add(validInput())
	require.NoError(t, err)

	snapshot := l.Entries()
	snapshot[0].Quantity = 999

	assert.Equal(t, 10, l.Entries()[0].Quantity)
}
