package dataset

import "fmt"

// ParseError describes a malformed raw file. It fails that single file
// only; dataset construction continues over the remaining files.
type ParseError struct {
	File   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.File, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
