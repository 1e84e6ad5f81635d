package components

import (
	"errors"

	"github.com/kerbaras/quotes/pkg/app/styles"
	"github.com/kerbaras/quotes/pkg/data"
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

// StatusLine shows the outcome of the last action below the quote.
type StatusLine struct {
	text string
	kind statusKind
}

func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

func (s *StatusLine) Info(text string) {
	s.text, s.kind = text, statusInfo
}

func (s *StatusLine) Success(text string) {
	s.text, s.kind = text, statusSuccess
}

// Error shows err, ignoring a missing favourites file which is the normal
// state on first launch. A nil or fully ignored error leaves the line as is.
func (s *StatusLine) Error(err error) {
	err = visibleError(err)
	if err == nil {
		return
	}
	s.text, s.kind = err.Error(), statusError
}

func (s *StatusLine) Clear() {
	s.text, s.kind = "", statusNone
}

func (s *StatusLine) Text() string {
	return s.text
}

func (s *StatusLine) IsError() bool {
	return s.kind == statusError
}

func (s *StatusLine) View() string {
	switch s.kind {
	case statusInfo:
		return styles.StatusInfo.Render(s.text)
	case statusSuccess:
		return styles.StatusSuccess.Render(s.text)
	case statusError:
		return styles.StatusError.Render("Error: " + s.text)
	default:
		return ""
	}
}

func visibleError(err error) error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var keep []error
		for _, e := range joined.Unwrap() {
			if v := visibleError(e); v != nil {
				keep = append(keep, v)
			}
		}
		return errors.Join(keep...)
	}
	if errors.Is(err, data.ErrNotFound) {
		return nil
	}
	return err
}
