package ajl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ajltrack/models"
)

func TestSearchNoFiltersReturnsEverything(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0, AJL: "A001", Aircraft: "9M-LNR", System: "Hydraulics"},
		{Index: 1, AJL: "A002", Aircraft: "9M-LDJ", System: "Avionics"},
	}

	result := Search(rows, "", "", models.StatusMap{})

	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Rows, 2)
	assert.Equal(t, DisplayColumns, result.Columns)
}

func TestSearchFiltersAreTrimmedExactMatch(t *testing.T) {
	rows := []models.RawRow{
		{AJL: "A001", Aircraft: " 9M-LNR ", System: "Hydraulics"},
		{AJL: "A002", Aircraft: "9M-LDJ", System: "Hydraulics"},
		{AJL: "A003", Aircraft: "9M-lnr", System: "Avionics"},
	}

	result := Search(rows, "9M-LNR", "", nil)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "A001", result.Rows[0][models.ColAJL])

	result = Search(rows, "9M-LDJ", "Hydraulics", nil)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "A002", result.Rows[0][models.ColAJL])

	result = Search(rows, "", "Avionics", nil)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "A003", result.Rows[0][models.ColAJL])
}

// A filtered-out row sitting between two surviving rows does not break the
// anchor carry: fill runs over the surviving order only.
func TestSearchFillSkipsFilteredRows(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0, AJL: "A001", Aircraft: "9M-LNR"},
		{Index: 1, AJL: "", Aircraft: "9M-LDJ"},
		{Index: 2, AJL: "", Aircraft: "9M-LNR"},
	}

	result := Search(rows, "9M-LNR", "", nil)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "A001", result.Rows[0][models.ColAJL])
	assert.Equal(t, "A001", result.Rows[1][models.ColAJL])
}

// When the only non-blank anchor value lives on a filtered-out row, the
// surviving rows do NOT inherit it. Filling before filtering would leak
// "A001" into the result here.
func TestSearchFillStateExcludesFilteredRows(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0, AJL: "", Aircraft: "9M-LNR"},
		{Index: 1, AJL: "A001", Aircraft: "9M-LDJ"},
		{Index: 2, AJL: "", Aircraft: "9M-LNR"},
	}

	result := Search(rows, "9M-LNR", "", nil)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "", result.Rows[0][models.ColAJL])
	assert.Equal(t, "", result.Rows[1][models.ColAJL])
}

func TestSearchJoinsStatusByFilledKey(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0, AJL: "A001", Aircraft: "9M-LNR"},
		{Index: 1, AJL: "", Aircraft: "9M-LNR"}, // merged continuation of A001
		{Index: 2, AJL: "A002", Aircraft: "9M-LNR"},
	}
	statuses := models.StatusMap{"A001": models.StatusClosed}

	result := Search(rows, "", "", statuses)
	require.Equal(t, 3, result.Count)
	assert.Equal(t, models.StatusClosed, result.Rows[0][models.ColStatus])
	assert.Equal(t, models.StatusClosed, result.Rows[1][models.ColStatus])
	assert.Equal(t, models.StatusOpen, result.Rows[2][models.ColStatus])
}

func TestSearchDisplayRowsCarryEveryColumn(t *testing.T) {
	rows := []models.RawRow{
		{AJL: "A001", Aircraft: "9M-LNR", Extra: map[string]string{"Unexpected": "x"}},
	}

	result := Search(rows, "", "", nil)
	require.Equal(t, 1, result.Count)

	row := result.Rows[0]
	for _, col := range DisplayColumns {
		_, ok := row[col]
		assert.True(t, ok, "display column %q missing", col)
	}
	assert.Equal(t, "9M-LNR", row[models.ColAircraft])
	assert.Equal(t, "", row[models.ColSystem])
	assert.Equal(t, models.StatusOpen, row[models.ColStatus])

	// Unrecognized columns never leak into the projection.
	_, ok := row["Unexpected"]
	assert.False(t, ok)
}

func TestStatusFor(t *testing.T) {
	statuses := models.StatusMap{
		"A001": models.StatusClosed,
		"A002": "",
		"A003": "ON HOLD",
	}

	assert.Equal(t, models.StatusClosed, StatusFor(statuses, "A001"))
	assert.Equal(t, models.StatusOpen, StatusFor(statuses, "A002"))
	assert.Equal(t, "ON HOLD", StatusFor(statuses, "A003"))
	assert.Equal(t, models.StatusOpen, StatusFor(statuses, "A999"))
}
