package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewWithMeter(t *testing.T) {
	c, err := NewWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NotPanics(t, func() {
		c.Streamed(5, 2, 7)
		c.Streamed(0, 0, 0)
		c.Crashed("house_1")
	})
}

func TestNew_UsesGlobalProvider(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNilCountersAreSafe(t *testing.T) {
	var c *Counters
	assert.NotPanics(t, func() {
		c.Streamed(1, 1, 1)
		c.Crashed("house_2")
	})
}
