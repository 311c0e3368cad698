package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/models"
)

func amount(v float64) models.Amount {
	return models.Amount{Value: v, Valid: true}
}

func sampleExpenses() []models.Record {
	return []models.Record{
		{ID: "1", CreatedAt: "2024-01-05T10:30:00Z", Category: "food", Amount: amount(12)},
		{ID: "2", CreatedAt: "2024-01-06T08:00:00Z", Category: "rent", Amount: amount(500)},
	}
}

func ids(recs []models.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_NoFiltersReturnsAllInOrder(t *testing.T) {
	got := Apply(sampleExpenses(), models.KindExpense, Filters{})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestApply_CategoryFilter(t *testing.T) {
	got := Apply(sampleExpenses(), models.KindExpense, Filters{Class: "food"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApply_CategoryFilterIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleExpenses(), models.KindExpense, Filters{Class: "Food"})
	require.Len(t, got, 1)
	assert.Equal(t, "food", got[0].Category)
}

func TestApply_DateFilter(t *testing.T) {
	d, err := ParseDate("2024-01-06")
	require.NoError(t, err)

	got := Apply(sampleExpenses(), models.KindExpense, Filters{Date: &d})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApply_DateFilterIgnoresTimeOfDay(t *testing.T) {
	recs := []models.Record{
		{ID: "late", CreatedAt: "2024-01-05T23:59:00+05:30", Category: "food"},
		{ID: "early", CreatedAt: "2024-01-05T00:00:01Z", Category: "food"},
		{ID: "other", CreatedAt: "2024-01-04T23:59:59Z", Category: "food"},
	}
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)

	got := Apply(recs, models.KindExpense, Filters{Date: &d})
	assert.Equal(t, []string{"late", "early"}, ids(got))
}

func TestApply_ConjunctivePredicates(t *testing.T) {
	recs := append(sampleExpenses(),
		models.Record{ID: "3", CreatedAt: "2024-01-05T20:00:00Z", Category: "rent"})
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)

	got := Apply(recs, models.KindExpense, Filters{Date: &d, Class: "rent"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestApply_MissingClassNeverMatches(t *testing.T) {
	recs := []models.Record{
		{ID: "typed", CreatedAt: "2024-01-05T10:00:00Z", Type: "deposit"},
		{ID: "untyped", CreatedAt: "2024-01-05T11:00:00Z"},
	}

	got := Apply(recs, models.KindTransaction, Filters{Class: "deposit"})
	assert.Equal(t, []string{"typed"}, ids(got))
}

func TestApply_UnparsableDateNeverMatchesDateFilter(t *testing.T) {
	recs := []models.Record{
		{ID: "bad", CreatedAt: "garbage", Category: "food"},
		{ID: "good", CreatedAt: "2024-01-05T10:00:00Z", Category: "food"},
	}
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)

	got := Apply(recs, models.KindExpense, Filters{Date: &d})
	assert.Equal(t, []string{"good"}, ids(got))
}

func TestApply_OrderPreserved(t *testing.T) {
	recs := []models.Record{
		{ID: "c", CreatedAt: "2024-03-01T00:00:00Z", Category: "food"},
		{ID: "a", CreatedAt: "2024-01-01T00:00:00Z", Category: "food"},
		{ID: "b", CreatedAt: "2024-02-01T00:00:00Z", Category: "food"},
	}

	got := Apply(recs, models.KindExpense, Filters{Class: "food"})
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 5}, d)
	assert.Equal(t, "2024-01-05", d.String())

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)
}
