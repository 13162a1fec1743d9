package ajl

import (
	"strings"

	"ajltrack/models"
)

// DisplayColumns is the fixed column order every search response carries,
// independent of what the loaded sheet actually contains. Aircraft, System
// and Status are attached on top of these.
var DisplayColumns = []string{
	models.ColNo,
	models.ColAJL,
	models.ColDefectTask,
	models.ColSpares,
	models.ColDFP,
	models.ColRemarks,
	models.ColRobbing,
	models.ColReceiving,
	models.ColLDJCompat,
	models.ColMatplan,
	models.ColSpareEDD,
	models.ColOption,
	models.ColBook,
}

// Search filters rows by the optional aircraft and system values (trimmed,
// case-sensitive exact match; "" means no constraint), forward-fills the
// anchor columns over the filtered sequence, and projects the survivors onto
// the display schema with the persisted status joined in by the filled
// AJL/DMI key.
func Search(rows []models.RawRow, aircraft, system string, statuses models.StatusMap) models.SearchResult {
	aircraft = strings.TrimSpace(aircraft)
	system = strings.TrimSpace(system)

	matched := make([]models.RawRow, 0, len(rows))
	for _, row := range rows {
		if aircraft != "" && strings.TrimSpace(row.Aircraft) != aircraft {
			continue
		}
		if system != "" && strings.TrimSpace(row.System) != system {
			continue
		}
		matched = append(matched, row)
	}

	// Fill after filtering: sparse filtered results still inherit anchor
	// values from the nearest surviving predecessor.
	filled := ForwardFill(matched)

	out := make([]models.DisplayRow, 0, len(filled))
	for _, row := range filled {
		display := make(models.DisplayRow, len(DisplayColumns)+3)
		for _, col := range DisplayColumns {
			display[col] = row.Get(col)
		}
		display[models.ColAircraft] = row.Aircraft
		display[models.ColSystem] = row.System
		display[models.ColStatus] = StatusFor(statuses, row.AJL)
		out = append(out, display)
	}

	return models.SearchResult{
		Columns: DisplayColumns,
		Count:   len(out),
		Rows:    out,
	}
}

// StatusFor returns the persisted status for a group key, defaulting to open
// when the key is absent or holds an empty value.
func StatusFor(statuses models.StatusMap, key string) string {
	if s, ok := statuses[key]; ok && s != "" {
		return s
	}
	return models.StatusOpen
}
