package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderExpected(t *testing.T) {
	assert.Equal(t, uint(0), FIFO.Expected(0, 4))
	assert.Equal(t, uint(3), FIFO.Expected(3, 4))
	assert.Equal(t, uint(3), LIFO.Expected(0, 4))
	assert.Equal(t, uint(0), LIFO.Expected(3, 4))
	assert.Equal(t, "LIFO", LIFO.String())
	assert.Equal(t, "FIFO", FIFO.String())
}
