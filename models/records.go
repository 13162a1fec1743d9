package models

// Column names as they appear in the workbook header row. The tracking sheet
// schema is fixed; anything outside this set lands in RawRow.Extra.
const (
	ColNo         = "NO"
	ColAJL        = "AJL/DMI"
	ColDefectTask = "DEFECT/TASK"
	ColSpares     = "SPARES"
	ColDFP        = "DFP"
	ColRemarks    = "REMARKS"
	ColRobbing    = "ROBBING DECLARATION"
	ColReceiving  = "RECEIVING AIRCRAFT"
	ColLDJCompat  = "9M-LDJ Compatibility"
	ColMatplan    = "MATPLAN UPDATE"
	ColSpareEDD   = "SPARE EDD"
	ColOption     = "OPTION"
	ColBook       = "BOOK"
	ColAircraft   = "Aircraft"
	ColSystem     = "System"
	ColStatus     = "Status"
)

// Record statuses. Any string is accepted and stored, but only an exact
// StatusClosed counts as closed; everything else (including absent) is open.
const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// RawRow is one physical row of the tracking sheet. Known columns are typed
// fields so schema drift breaks at compile time; unrecognized columns are
// preserved in Extra. Index is the zero-based load-order position, stable for
// the duration of one load only.
type RawRow struct {
	Index      int
	No         string
	AJL        string
	DefectTask string
	Spares     string
	DFP        string
	Remarks    string
	Robbing    string
	Receiving  string
	LDJCompat  string
	Matplan    string
	SpareEDD   string
	Option     string
	Book       string
	Aircraft   string
	System     string
	Extra      map[string]string
}

// Get returns the row's value for a column name, "" when the column is
// unknown or the cell was blank. Blank and absent are never distinguished.
func (r *RawRow) Get(col string) string {
	switch col {
	case ColNo:
		return r.No
	case ColAJL:
		return r.AJL
	case ColDefectTask:
		return r.DefectTask
	case ColSpares:
		return r.Spares
	case ColDFP:
		return r.DFP
	case ColRemarks:
		return r.Remarks
	case ColRobbing:
		return r.Robbing
	case ColReceiving:
		return r.Receiving
	case ColLDJCompat:
		return r.LDJCompat
	case ColMatplan:
		return r.Matplan
	case ColSpareEDD:
		return r.SpareEDD
	case ColOption:
		return r.Option
	case ColBook:
		return r.Book
	case ColAircraft:
		return r.Aircraft
	case ColSystem:
		return r.System
	}
	return r.Extra[col]
}

// Set assigns the row's value for a column name, routing unknown columns to
// the Extra map.
func (r *RawRow) Set(col, value string) {
	switch col {
	case ColNo:
		r.No = value
	case ColAJL:
		r.AJL = value
	case ColDefectTask:
		r.DefectTask = value
	case ColSpares:
		r.Spares = value
	case ColDFP:
		r.DFP = value
	case ColRemarks:
		r.Remarks = value
	case ColRobbing:
		r.Robbing = value
	case ColReceiving:
		r.Receiving = value
	case ColLDJCompat:
		r.LDJCompat = value
	case ColMatplan:
		r.Matplan = value
	case ColSpareEDD:
		r.SpareEDD = value
	case ColOption:
		r.Option = value
	case ColBook:
		r.Book = value
	case ColAircraft:
		r.Aircraft = value
	case ColSystem:
		r.System = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[col] = value
	}
}

// DisplayRow is a projected row ready for the client table: every display
// column present (default ""), plus Aircraft, System and the joined Status.
type DisplayRow map[string]string

// SearchResult is the response shape of a search: the fixed column list, the
// post-filter row count and the projected rows.
type SearchResult struct {
	Columns []string     `json:"columns"`
	Count   int          `json:"count"`
	Rows    []DisplayRow `json:"rows"`
}

// MetaResult lists the distinct aircraft and system values present in the
// loaded sheet, blank-filtered and sorted ascending.
type MetaResult struct {
	Aircrafts []string `json:"aircrafts"`
	Systems   []string `json:"systems"`
}

// Summary counts open and closed AJL/DMI groups for the summarized aircraft.
// Counts are per group, not per row.
type Summary struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// StatusMap maps an AJL/DMI group key to its persisted status string.
type StatusMap map[string]string

// Credential is one entry of the flat credential list used by login.
type Credential struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}
