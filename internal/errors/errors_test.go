package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	err := Wrap(fmt.Errorf("outer: %w", &codeError{code: "X"}), "context")

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, "X", got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestIsThroughWrap(t *testing.T) {
	sentinel := New("sentinel")

	assert.True(t, Is(Wrapf(sentinel, "step %d", 2), sentinel))
	assert.Equal(t, sentinel, Cause(Wrap(sentinel, "ctx")))
}
