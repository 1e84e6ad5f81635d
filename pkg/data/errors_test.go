package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorNil(t *testing.T) {
	assert.NoError(t, NewError(KindIO, "save", nil))
}

func TestErrorKinds(t *testing.T) {
	err := NewError(KindIO, "load", ErrNotFound)

	assert.True(t, IsKind(err, KindIO))
	assert.False(t, IsKind(err, KindDecode))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "load io error")
}

func TestIsKindPlainError(t *testing.T) {
	assert.False(t, IsKind(errors.New("boom"), KindNetwork))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
