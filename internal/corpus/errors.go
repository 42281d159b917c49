package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAuthor marks a query for an author the corpus does not hold.
	ErrUnknownAuthor = errors.New("unknown author")
	// ErrExportIO marks a failure persisting a rendered table.
	ErrExportIO = errors.New("export write failed")
)

// AggregationError reports an invalid corpus query.
type AggregationError struct {
	Author string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("corpus: author %q not found", e.Author)
}

func (e *AggregationError) Is(target error) bool { return target == ErrUnknownAuthor }

// ExportIOError reports a failure writing the CSV destination.
type ExportIOError struct {
	Path string
	Err  error
}

func (e *ExportIOError) Error() string {
	return fmt.Sprintf("corpus: write %s: %v", e.Path, e.Err)
}

func (e *ExportIOError) Unwrap() error { return e.Err }

func (e *ExportIOError) Is(target error) bool { return target == ErrExportIO }
