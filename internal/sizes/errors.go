package sizes

import "fmt"

// DataUnavailableError reports a sizing table that is missing, unreadable
// or structurally invalid. Callers treat it as "run the scraper or fix the
// file"; no partial table is ever returned alongside it.
type DataUnavailableError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	msg := "sizing table unavailable: " + e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("sizing table %s unavailable: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(path, reason string, err error) *DataUnavailableError {
	return &DataUnavailableError{Path: path, Reason: reason, Err: err}
}
