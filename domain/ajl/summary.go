package ajl

import (
	"strings"

	"ajltrack/models"
)

// SummaryAircraft is the single aircraft the status summary is scoped to.
// Rows for any other aircraft never contribute to the summary.
const SummaryAircraft = "9M-LNR"

// Summarize counts open versus closed AJL/DMI groups among the rows whose
// trimmed Aircraft equals SummaryAircraft. Grouping uses the raw AJL/DMI cell
// value, not the forward-filled one, so blank merged cells collapse into a
// single group keyed by "". A group is closed only when the status store
// holds exactly StatusClosed for its key; anything else counts as open.
// Counts are per group, not per row.
func Summarize(rows []models.RawRow, statuses models.StatusMap) models.Summary {
	groups := make(map[string]struct{})
	for _, row := range rows {
		if strings.TrimSpace(row.Aircraft) != SummaryAircraft {
			continue
		}
		groups[row.AJL] = struct{}{}
	}

	var summary models.Summary
	for key := range groups {
		if statuses[key] == models.StatusClosed {
			summary.Closed++
		} else {
			summary.Open++
		}
	}
	return summary
}
