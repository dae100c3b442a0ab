package storage

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

// Raw file names encode the file-local region code and the download time:
// vhi_id__<code>__<YYYY-MM-DD_HH-MM>.csv. The prefix up to the second
// separator is what the "already downloaded" check matches on; the
// timestamp only disambiguates repeated downloads.

const rawFileTimeLayout = "2006-01-02_15-04"

// RawFileName builds the storage name for a region's raw file.
func RawFileName(localID int, downloadedAt time.Time) string {
	return fmt.Sprintf("vhi_id__%d__%s.csv", localID, downloadedAt.Format(rawFileTimeLayout))
}

// RawFilePrefix returns the name prefix shared by every download of the
// given file-local region id.
func RawFilePrefix(localID int) string {
	return fmt.Sprintf("vhi_id__%d__", localID)
}

// LocalIDFromFileName extracts the file-local region id from a raw file
// name. The name may carry a directory prefix.
func LocalIDFromFileName(filename string) (int, error) {
	base := path.Base(filename)
	parts := strings.Split(base, "__")
	if len(parts) < 2 {
		return 0, fmt.Errorf("file name %q does not encode a region id", base)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("file name %q has a non-numeric region id: %w", base, err)
	}
	return id, nil
}
