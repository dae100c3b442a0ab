package models

import "time"

// Record represents one normalized weekly vegetation-health observation
// for a canonical region. The struct is comparable on purpose: dataset
// deduplication keys on the full record value.
type Record struct {
	RegionID int     `json:"region_id"` // canonical region id, 1-25
	Year     int     `json:"year"`
	Week     int     `json:"week"` // 1-52
	SMN      float64 `json:"smn"`  // soil moisture, near-surface
	SMT      float64 `json:"smt"`  // soil moisture, top layer
	VCI      float64 `json:"vci"`  // vegetation condition index
	TCI      float64 `json:"tci"`  // temperature condition index
	VHI      float64 `json:"vhi"`  // vegetation health index
}

// Dataset is the deduplicated union of all parsed records. It is rebuilt
// from the raw files on every load; row order is unspecified.
type Dataset struct {
	Records []Record  `json:"records"`
	BuiltAt time.Time `json:"built_at"`
	Sources int       `json:"sources"` // raw files that parsed successfully
}

// Empty reports whether the dataset contains no records.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// Parameter identifies which index a query sorts, charts, or averages on.
type Parameter string

const (
	ParamVCI Parameter = "VCI"
	ParamTCI Parameter = "TCI"
	ParamVHI Parameter = "VHI"
)

// ParseParameter maps a request string to a Parameter, defaulting to VHI.
func ParseParameter(s string) Parameter {
	switch s {
	case "VCI", "vci":
		return ParamVCI
	case "TCI", "tci":
		return ParamTCI
	default:
		return ParamVHI
	}
}

// Value extracts the parameter's value from a record.
func (p Parameter) Value(r Record) float64 {
	switch p {
	case ParamVCI:
		return r.VCI
	case ParamTCI:
		return r.TCI
	default:
		return r.VHI
	}
}

// SortMode controls the ordering of filtered query results.
type SortMode string

const (
	SortNone       SortMode = "none"
	SortAscending  SortMode = "asc"
	SortDescending SortMode = "desc"
)

// ParseSortMode maps a request string to a SortMode, defaulting to none.
func ParseSortMode(s string) SortMode {
	switch s {
	case "asc", "ascending":
		return SortAscending
	case "desc", "descending":
		return SortDescending
	default:
		return SortNone
	}
}

// YearMean is one row of the per-year comparison view: the arithmetic
// mean of a parameter over all of a region's records in that year.
type YearMean struct {
	Year int     `json:"year"`
	Mean float64 `json:"mean"`
}
