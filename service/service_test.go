package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type thing struct{ n int }

func TestSame(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	c := NewChecker(zap.New(core))

	a, b := &thing{n: 1}, &thing{n: 1}

	assert.True(t, Same(c, a, a))
	assert.False(t, Same(c, a, b), "equal values are not the same object")

	entries := logs.FilterMessage("compared instances").All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, true, entries[0].ContextMap()["same"])
		assert.Equal(t, false, entries[1].ContextMap()["same"])
	}
}

func TestDistinct(t *testing.T) {
	t.Parallel()

	c := NewChecker(zap.NewNop())
	a, b := &thing{}, &thing{}

	assert.Equal(t, 0, Distinct[thing](c, nil))
	assert.Equal(t, 1, Distinct(c, []*thing{a, a, a}))
	assert.Equal(t, 2, Distinct(c, []*thing{a, b, a}))
}
