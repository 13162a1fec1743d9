package ajl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ajltrack/models"
)

func TestForwardFillCarriesAnchorValues(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0, No: "1", AJL: "A001", DefectTask: "Hydraulic leak", Book: "B1"},
		{Index: 1, Spares: "actuator seal"},
		{Index: 2, AJL: "A002"},
	}

	filled := ForwardFill(rows)
	require.Len(t, filled, 3)

	// Row 1 is a merged continuation: every anchor inherits row 0.
	assert.Equal(t, "1", filled[1].No)
	assert.Equal(t, "A001", filled[1].AJL)
	assert.Equal(t, "Hydraulic leak", filled[1].DefectTask)
	assert.Equal(t, "B1", filled[1].Book)

	// Row 2 resets AJL but still inherits the other anchors.
	assert.Equal(t, "A002", filled[2].AJL)
	assert.Equal(t, "1", filled[2].No)
	assert.Equal(t, "B1", filled[2].Book)

	// Non-anchor columns pass through untouched.
	assert.Equal(t, "actuator seal", filled[1].Spares)
	assert.Equal(t, "", filled[2].Spares)
}

func TestForwardFillLeadingBlanksStayEmpty(t *testing.T) {
	rows := []models.RawRow{
		{Index: 0},
		{Index: 1, AJL: "A001"},
	}

	filled := ForwardFill(rows)
	assert.Equal(t, "", filled[0].AJL)
	assert.Equal(t, "A001", filled[1].AJL)
}

func TestForwardFillNeverEmptiesAfterFirstValue(t *testing.T) {
	rows := []models.RawRow{
		{AJL: ""},
		{AJL: "A001"},
		{AJL: ""},
		{AJL: ""},
		{AJL: "A002"},
		{AJL: ""},
	}

	filled := ForwardFill(rows)
	for i := 1; i < len(filled); i++ {
		assert.NotEmpty(t, filled[i].AJL, "row %d lost its effective AJL/DMI", i)
	}
}

func TestForwardFillDoesNotMutateInput(t *testing.T) {
	rows := []models.RawRow{
		{AJL: "A001"},
		{AJL: ""},
	}

	ForwardFill(rows)
	assert.Equal(t, "", rows[1].AJL)
}
