package dataset

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

// sourceColumns is the fixed column order of a raw VHI file: year, week,
// SMN, SMT, VCI, TCI, VHI, plus one trailing unused column produced by
// the source's trailing comma.
const sourceColumns = 8

// noDataVHI is the source's sentinel for "no observation this week".
const noDataVHI = -1

// ParseFile converts one raw VHI file into records. The returned region
// id is the file-local one extracted from the filename; reconciliation to
// canonical ids happens in the builder. Cleanup rules applied here:
// the first content line is a header and is skipped, the file's last row
// is a footer and is dropped, the first data row's year cell carries a
// non-numeric prefix that is stripped, rows with VHI == -1 are dropped,
// and the trailing unused column is discarded.
func ParseFile(filename string, content []byte) (int, []models.Record, error) {
	localID, err := storage.LocalIDFromFileName(filename)
	if err != nil {
		return 0, nil, &ParseError{File: filename, Reason: "region id not extractable from file name", Err: err}
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, nil, &ParseError{File: filename, Reason: "unreadable csv", Err: err}
	}

	// Header line plus footer row; anything shorter has no data rows.
	if len(rows) <= 2 {
		return localID, nil, nil
	}
	dataRows := rows[1 : len(rows)-1]

	records := make([]models.Record, 0, len(dataRows))
	for i, row := range dataRows {
		if len(row) != sourceColumns {
			return 0, nil, &ParseError{
				File:   filename,
				Reason: "unexpected column count " + strconv.Itoa(len(row)),
			}
		}

		year, err := parseYear(row[0])
		if err != nil {
			return 0, nil, &ParseError{File: filename, Reason: "bad year in row " + strconv.Itoa(i), Err: err}
		}

		week, err := parseWeek(row[1])
		if err != nil {
			return 0, nil, &ParseError{File: filename, Reason: "bad week in row " + strconv.Itoa(i), Err: err}
		}

		values := make([]float64, 5)
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[2+j]), 64)
			if err != nil {
				return 0, nil, &ParseError{File: filename, Reason: "bad numeric field in row " + strconv.Itoa(i), Err: err}
			}
			values[j] = v
		}
		// row[7] is the trailing unused column, discarded.

		if values[4] == noDataVHI {
			continue
		}

		records = append(records, models.Record{
			Year: year,
			Week: week,
			SMN:  values[0],
			SMT:  values[1],
			VCI:  values[2],
			TCI:  values[3],
			VHI:  values[4],
		})
	}

	return localID, records, nil
}

// parseYear coerces a year cell to an integer, stripping any leading
// non-digit characters the source embeds in the first row's year cell.
func parseYear(cell string) (int, error) {
	trimmed := strings.TrimLeftFunc(strings.TrimSpace(cell), func(r rune) bool {
		return r < '0' || r > '9'
	})
	return strconv.Atoi(trimmed)
}

// parseWeek coerces a week cell to an integer in 1..52. Fractional cells
// that carry no fractional part (e.g. "2.0") are accepted.
func parseWeek(cell string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, strconv.ErrSyntax
	}
	week := int(v)
	if week < 1 || week > 52 {
		return 0, strconv.ErrRange
	}
	return week, nil
}
