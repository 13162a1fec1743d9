// Package sheet loads the AJL/DMI tracking sheet from disk. It handles both
// the xlsx workbook and the plain CSV export behind one reader.
package sheet

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ajltrack/models"

	"github.com/xuri/excelize/v2"
)

// DataReader resolves and reads the active source file. Resolution happens on
// every Load call: the workbook wins when both files exist, and when neither
// exists the data set is simply empty. Nothing is cached between calls.
type DataReader struct {
	workbookPath string
	csvPath      string
}

// NewDataReader creates a reader over the two candidate source paths.
func NewDataReader(workbookPath, csvPath string) *DataReader {
	return &DataReader{workbookPath: workbookPath, csvPath: csvPath}
}

// Load reads the active source file into raw rows tagged with their
// zero-based sheet position. Fail-open: a missing, unreadable or malformed
// file is logged and yields an empty result, never an error.
func (r *DataReader) Load(ctx context.Context) ([]models.RawRow, string) {
	path, fileType := r.resolve()
	if path == "" {
		return []models.RawRow{}, ""
	}

	var raw [][]string
	var err error
	switch fileType {
	case "xlsx":
		raw, err = readWorkbookRows(path)
	case "csv":
		raw, err = readCSVRows(path)
	}
	if err != nil {
		log.Printf("[DataReader] failed to read %s file %s: %v", fileType, path, err)
		return []models.RawRow{}, ""
	}

	return buildRows(raw), filepath.Base(path)
}

// resolve picks the active source file by existence check, workbook first.
func (r *DataReader) resolve() (path, fileType string) {
	if r.workbookPath != "" {
		if _, err := os.Stat(r.workbookPath); err == nil {
			return r.workbookPath, "xlsx"
		}
	}
	if r.csvPath != "" {
		if _, err := os.Stat(r.csvPath); err == nil {
			return r.csvPath, "csv"
		}
	}
	return "", ""
}

// readWorkbookRows reads the first sheet of the workbook as string cells.
func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exported sheets have ragged rows
	return reader.ReadAll()
}

// buildRows converts the header row plus data rows into RawRows. Headers are
// trimmed; cell values are kept as-is, with absent cells normalized to "" so
// downstream code never sees "missing" and "empty" as distinct states.
func buildRows(raw [][]string) []models.RawRow {
	if len(raw) < 2 {
		return []models.RawRow{}
	}

	headers := make([]string, len(raw[0]))
	for i, header := range raw[0] {
		headers[i] = strings.TrimSpace(header)
	}

	rows := make([]models.RawRow, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := models.RawRow{Index: i - 1}
		for j, cell := range raw[i] {
			if j < len(headers) && headers[j] != "" {
				row.Set(headers[j], cell)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
