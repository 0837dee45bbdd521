package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdleDoesNothing(t *testing.T) {
	assert.NotPanics(t, Idle)
}

func TestCounterRunIncrementsValue(t *testing.T) {
	c := NewCounter()
	assert.EqualValues(t, 0, c.Value())

	c.Run()
	c.Run()
	c.Run()
	assert.EqualValues(t, 3, c.Value())
}
