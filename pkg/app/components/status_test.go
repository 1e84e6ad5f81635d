package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerbaras/quotes/pkg/data"
)

func TestStatusLine(t *testing.T) {
	s := NewStatusLine()
	assert.Empty(t, s.View())

	s.Info("working")
	assert.Contains(t, s.View(), "working")
	assert.False(t, s.IsError())

	s.Error(errors.New("boom"))
	assert.True(t, s.IsError())
	assert.Contains(t, s.View(), "Error: boom")

	s.Clear()
	assert.Empty(t, s.Text())
}

func TestStatusLineHidesMissingFile(t *testing.T) {
	s := NewStatusLine()
	s.Success("ok")

	s.Error(data.NewError(data.KindIO, "load", data.ErrNotFound))
	assert.Equal(t, "ok", s.Text())

	s.Error(nil)
	assert.Equal(t, "ok", s.Text())
}

func TestStatusLineJoinedErrors(t *testing.T) {
	s := NewStatusLine()
	fetchErr := data.NewError(data.KindNetwork, "fetch", errors.New("offline"))
	loadErr := data.NewError(data.KindIO, "load", data.ErrNotFound)

	s.Error(errors.Join(fetchErr, loadErr))

	assert.True(t, s.IsError())
	assert.Contains(t, s.Text(), "offline")
	assert.NotContains(t, s.Text(), "not found")
}
