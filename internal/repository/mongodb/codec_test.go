package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

func TestDecimalCodecStoresDecimal128(t *testing.T) {
	reg := NewRegistry()

	in := models.WorkerStat{
		DisplayName:   "Maria Silva",
		TotalValue:    decimal.RequireFromString("1234.50"),
		TotalQuantity: 12,
		Pending:       decimal.RequireFromString("0.10"),
		Paid:          decimal.RequireFromString("1234.40"),
	}

	data, err := bson.MarshalWithRegistry(reg, in)
	require.NoError(t, err)

	raw := bson.Raw(data)
	_, ok := raw.Lookup("total_value").Decimal128OK()
	assert.True(t, ok, "decimal should be encoded as Decimal128")

	var out models.WorkerStat
	require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &out))
	assert.Equal(t, "Maria Silva", out.DisplayName)
	assert.True(t, in.TotalValue.Equal(out.TotalValue))
	assert.True(t, in.Pending.Equal(out.Pending))
	assert.True(t, in.Paid.Equal(out.Paid))
}

func TestDecimalCodecAcceptsLegacyEncodings(t *testing.T) {
	reg := NewRegistry()

	d128, err := primitive.ParseDecimal128("7.25")
	require.NoError(t, err)

	data, err := bson.Marshal(bson.M{
		"total_value": "10.5",
		"pending":     d128,
		"paid":        3.25,
	})
	require.NoError(t, err)

	var out models.WorkerStat
	require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &out))
	assert.Equal(t, "10.5", out.TotalValue.String())
	assert.Equal(t, "7.25", out.Pending.String())
	assert.Equal(t, "3.25", out.Paid.String())
}

func TestWeeklyReportInlinesLeader(t *testing.T) {
	reg := NewRegistry()

	report := models.WeeklyReport{
		GeneratedAt: time.Date(2024, 6, 7, 20, 0, 0, 0, time.UTC),
		Leader: &models.RankedWorker{
			WorkerStat: models.WorkerStat{DisplayName: "Ana Souza", TotalQuantity: 20},
			Position:   1,
		},
	}

	data, err := bson.MarshalWithRegistry(reg, report)
	require.NoError(t, err)

	leader := bson.Raw(data).Lookup("leader").Document()
	assert.Equal(t, "Ana Souza", leader.Lookup("display_name").StringValue())
	assert.EqualValues(t, 1, leader.Lookup("position").AsInt64())
}
