package scrape

import "fmt"

// ParseError reports reference page content that no longer matches the
// expected equivalency table structure.
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ring size page: %s", e.Stage)
	}
	return fmt.Sprintf("ring size page: %s: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
