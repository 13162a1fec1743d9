package ajl

import (
	"sort"
	"strings"

	"ajltrack/models"
)

// Meta extracts the distinct aircraft and system values present in the rows,
// blank-filtered and sorted ascending. Both lists are non-nil even when rows
// is empty so the JSON encoding stays [] rather than null.
func Meta(rows []models.RawRow) models.MetaResult {
	aircrafts := distinct(rows, func(r models.RawRow) string { return r.Aircraft })
	systems := distinct(rows, func(r models.RawRow) string { return r.System })
	return models.MetaResult{Aircrafts: aircrafts, Systems: systems}
}

func distinct(rows []models.RawRow, value func(models.RawRow) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, row := range rows {
		v := value(row)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
