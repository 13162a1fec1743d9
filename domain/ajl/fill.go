// Package ajl holds the pure record-processing pipeline for the AJL/DMI
// tracking sheet: forward-fill reconstruction of merged cells, search
// projection, status summary and meta extraction. Everything here operates on
// already-loaded rows; no I/O.
package ajl

import (
	"ajltrack/models"
)

// AnchorColumns are the columns the sheet merges vertically across the
// physical rows of one logical entry. Merged cells come out of the loader
// blank on every row but the first, so these four are reconstructed by
// forward-fill.
var AnchorColumns = []string{
	models.ColNo,
	models.ColAJL,
	models.ColDefectTask,
	models.ColBook,
}

// ForwardFill returns a copy of rows where every anchor column carries its
// effective value: the row's own value when non-blank, otherwise the nearest
// preceding row's effective value in the given order, starting from "".
// Fill state lives entirely within one call, so callers decide the scope by
// deciding which rows they pass in (the search pipeline fills after
// filtering, over the surviving order).
func ForwardFill(rows []models.RawRow) []models.RawRow {
	carry := make(map[string]string, len(AnchorColumns))
	filled := make([]models.RawRow, len(rows))
	for i, row := range rows {
		for _, col := range AnchorColumns {
			if v := row.Get(col); v != "" {
				carry[col] = v
			} else {
				row.Set(col, carry[col])
			}
		}
		filled[i] = row
	}
	return filled
}
