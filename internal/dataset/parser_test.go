package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRawFile = `year,week,SMN,SMT,VCI,TCI,VHI,
<tt><pre>1982,1,0.059,258.24,51.11,48.78,49.95,
1982,2,0.063,261.53,55.89,47.72,51.81,
1982,3,0.063,263.45,57.30,43.46,50.38,
1982,4,0.061,265.10,53.00,45.00,-1.00,
</pre></tt>`

func TestParseFileAppliesCleanupRules(t *testing.T) {
	localID, records, err := ParseFile("vhi_id__5__2025-02-11_18-26.csv", []byte(sampleRawFile))
	require.NoError(t, err)

	assert.Equal(t, 5, localID)

	// Four data rows: one is dropped for VHI == -1, the footer is
	// dropped before validation ever sees it.
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 1982, first.Year, "leading non-digit prefix must be stripped")
	assert.Equal(t, 1, first.Week)
	assert.InDelta(t, 0.059, first.SMN, 1e-9)
	assert.InDelta(t, 258.24, first.SMT, 1e-9)
	assert.InDelta(t, 51.11, first.VCI, 1e-9)
	assert.InDelta(t, 48.78, first.TCI, 1e-9)
	assert.InDelta(t, 49.95, first.VHI, 1e-9)

	for _, rec := range records {
		assert.NotEqual(t, float64(-1), rec.VHI)
		assert.Zero(t, rec.RegionID, "parser must not reconcile region ids")
	}
}

func TestParseFileDropsExactlyTheLastRow(t *testing.T) {
	// The footer here is a well-formed data row; it must still be
	// dropped because it is the file's last row.
	content := `year,week,SMN,SMT,VCI,TCI,VHI,
<tt><pre>1990,10,0.1,250.0,40.0,41.0,42.0,
1990,11,0.1,250.0,40.0,41.0,43.0,
1990,12,0.1,250.0,40.0,41.0,44.0,
`
	_, records, err := ParseFile("vhi_id__1__2025-01-01_00-00.csv", []byte(content))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 10, records[0].Week)
	assert.Equal(t, 11, records[1].Week)
}

func TestParseFileHeaderAndFooterOnly(t *testing.T) {
	content := "year,week,SMN,SMT,VCI,TCI,VHI,\n</pre></tt>\n"
	_, records, err := ParseFile("vhi_id__3__2025-01-01_00-00.csv", []byte(content))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseFileWrongColumnCount(t *testing.T) {
	content := `year,week,SMN,SMT,VCI,TCI,VHI,
1982,1,0.059,258.24,51.11
1982,2,0.063,261.53,55.89,47.72,51.81,
</pre></tt>`
	_, _, err := ParseFile("vhi_id__5__2025-02-11_18-26.csv", []byte(content))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "column count")
}

func TestParseFileWeekCoercion(t *testing.T) {
	tests := []struct {
		name      string
		week      string
		expectErr bool
		expected  int
	}{
		{"plain integer", "7", false, 7},
		{"integral float", "7.0", false, 7},
		{"fractional week", "7.5", true, 0},
		{"non-numeric", "seven", true, 0},
		{"below range", "0", true, 0},
		{"above range", "53", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "year,week,SMN,SMT,VCI,TCI,VHI,\n" +
				"1982," + tt.week + ",0.1,250.0,40.0,41.0,42.0,\n" +
				"1982,8,0.1,250.0,40.0,41.0,42.0,\n" +
				"</pre></tt>"
			_, records, err := ParseFile("vhi_id__2__2025-01-01_00-00.csv", []byte(content))

			if tt.expectErr {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, tt.expected, records[0].Week)
		})
	}
}

func TestParseFileBadNumericField(t *testing.T) {
	content := `year,week,SMN,SMT,VCI,TCI,VHI,
1982,1,oops,258.24,51.11,48.78,49.95,
1982,2,0.063,261.53,55.89,47.72,51.81,
</pre></tt>`
	_, _, err := ParseFile("vhi_id__5__2025-02-11_18-26.csv", []byte(content))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseFileUnresolvableRegionID(t *testing.T) {
	_, _, err := ParseFile("weather.csv", []byte(sampleRawFile))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Err)
}

func TestParseFileIsPure(t *testing.T) {
	id1, recs1, err1 := ParseFile("vhi_id__5__2025-02-11_18-26.csv", []byte(sampleRawFile))
	id2, recs2, err2 := ParseFile("vhi_id__5__2025-02-11_18-26.csv", []byte(sampleRawFile))

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, id1, id2)
	assert.Equal(t, recs1, recs2)
}
