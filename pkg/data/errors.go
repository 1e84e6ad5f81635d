package data

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by the boundary it happened at.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindDecode
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ErrNotFound is returned by FileStore.Load when no favourites file exists yet.
var ErrNotFound = errors.New("favourites file not found")

// Error wraps a failure from the fetcher or the favourites store.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns an *Error for op, or nil when err is nil.
func NewError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
