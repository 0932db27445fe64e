package grid

import "fmt"

// ConfigError reports grid configuration that cannot produce a usable layout,
// such as margins and gutters that consume the whole canvas width. It is
// raised at construction and never recovered internally.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid grid config: %s", e.Reason)
}

// SpanError reports a (column, span) request that does not fit the grid.
type SpanError struct {
	Col     int
	Span    int
	Columns int
}

// Error implements the error interface.
func (e *SpanError) Error() string {
	return fmt.Sprintf("invalid span: col %d span %d does not fit %d columns", e.Col, e.Span, e.Columns)
}
