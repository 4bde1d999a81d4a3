package niqueue

import (
	"testing"

	"github.com/i5heu/GoNatContainers/pkg/errsignal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalNilHandle(t *testing.T) {
	var out uint

	tests := []struct {
		name string
		call func() bool
	}{
		{"init", func() bool { return Init(nil) }},
		{"invalidate", func() bool { return Invalidate(nil) }},
		{"count", func() bool { return Count(nil, &out) }},
		{"count nil out", func() bool { return Count(nil, nil) }},
		{"add", func() bool { return Add(nil, 1) }},
		{"remove", func() bool { return Remove(nil, &out) }},
		{"remove nil out", func() bool { return Remove(nil, nil) }},
		{"peek", func() bool { return Peek(nil, &out) }},
		{"peek nil out", func() bool { return Peek(nil, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errsignal.Clear()
			assert.False(t, tt.call())
			assert.Equal(t, ErrObjectIsNull, errsignal.Last())
		})
	}
}

func TestSignalNilOut(t *testing.T) {
	var q Queue
	require.True(t, Init(&q))
	defer Invalidate(&q)
	require.True(t, Add(&q, 3))

	for name, call := range map[string]func() bool{
		"count":  func() bool { return Count(&q, nil) },
		"remove": func() bool { return Remove(&q, nil) },
		"peek":   func() bool { return Peek(&q, nil) },
	} {
		t.Run(name, func(t *testing.T) {
			errsignal.Clear()
			assert.False(t, call())
			assert.Equal(t, ErrOutIsNull, errsignal.Last())
		})
	}

	var n uint
	require.True(t, Count(&q, &n))
	assert.Equal(t, uint(1), n)
}

func TestSignalScenario(t *testing.T) {
	errsignal.Clear()

	var q Queue
	var v, n uint
	require.True(t, Init(&q))
	require.True(t, Add(&q, 5))
	require.True(t, Add(&q, 7))

	require.True(t, Count(&q, &n))
	assert.Equal(t, uint(2), n)
	require.True(t, Peek(&q, &v))
	assert.Equal(t, uint(5), v)
	require.True(t, Remove(&q, &v))
	assert.Equal(t, uint(5), v)
	require.True(t, Count(&q, &n))
	assert.Equal(t, uint(1), n)
	require.True(t, Remove(&q, &v))
	assert.Equal(t, uint(7), v)
	assert.NoError(t, errsignal.Last())

	v = 99
	assert.False(t, Remove(&q, &v))
	assert.Equal(t, ErrQueueIsEmpty, errsignal.Last())
	assert.Equal(t, uint(99), v, "out must not be written on failure")

	assert.False(t, Peek(&q, &v))
	assert.Equal(t, ErrQueueIsEmpty, errsignal.Last())

	require.True(t, Invalidate(&q))
	require.True(t, Init(&q))
	require.True(t, Count(&q, &n))
	assert.Zero(t, n)
	require.True(t, Invalidate(&q))
}
