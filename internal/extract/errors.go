package extract

import "fmt"

// UnsupportedFormatError is returned when a resume upload declares a format
// the extractor cannot read. The message is user-facing and names the format
// so API handlers can surface it verbatim.
type UnsupportedFormatError struct {
	Format  Format
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format %q: %s", e.Format, e.Message)
}

// ExtractionError represents a failure while reading a supported format,
// such as a corrupt archive.
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s file: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s file: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
