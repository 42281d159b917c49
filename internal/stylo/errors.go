package stylo

import (
	"errors"
	"fmt"
)

var (
	// ErrInput matches errors for sources that are empty or unreadable.
	ErrInput = errors.New("invalid document input")
	// ErrDegenerate matches errors for documents with no tokens or sentences.
	ErrDegenerate = errors.New("degenerate document")
)

// InputError reports a document source that could not supply usable text.
type InputError struct {
	Source string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("document %q: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInput }

// DegenerateDocumentError reports a document whose statistics would divide
// by zero.
type DegenerateDocumentError struct {
	Source    string
	Tokens    int
	Sentences int
}

func (e *DegenerateDocumentError) Error() string {
	return fmt.Sprintf("document %q is degenerate: %d tokens, %d sentences", e.Source, e.Tokens, e.Sentences)
}

func (e *DegenerateDocumentError) Is(target error) bool { return target == ErrDegenerate }
