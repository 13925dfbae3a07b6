// pkg/report/options.go
package report

import "errors"

// Format selects the output encoding
type Format string

const (
	// FormatText renders the aligned table
	FormatText Format = "text"

	// FormatJSON renders raw byte values as JSON
	FormatJSON Format = "json"
)

// ErrInvalidFormat is returned for unknown output formats
var ErrInvalidFormat = errors.New("format must be text or json")

// Options configures report rendering
type Options struct {
	// Format of the output, default FormatText
	Format Format

	// NameWidth truncates executable names to this many terminal columns
	// 0 = never truncate
	NameWidth int
}

// Validate checks if options are valid and fills in defaults
func (o *Options) Validate() error {
	if o.Format == "" {
		o.Format = FormatText
	}
	switch o.Format {
	case FormatText, FormatJSON:
	default:
		return ErrInvalidFormat
	}
	if o.NameWidth < 0 {
		o.NameWidth = 0
	}
	return nil
}
