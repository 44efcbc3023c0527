package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupRevealsOnce(t *testing.T) {
	g := NewGroup("about", About, 3)
	assert.Equal(t, Hidden, g.State())

	assert.False(t, g.Observe(false))
	assert.Equal(t, Hidden, g.State())

	assert.True(t, g.Observe(true))
	assert.Equal(t, Visible, g.State())

	// leaving and re-entering does not replay
	assert.False(t, g.Observe(false))
	assert.False(t, g.Observe(true))
	assert.Equal(t, Visible, g.State())
}

func TestChildDelays(t *testing.T) {
	g := NewGroup("experience", Experience, 3)

	assert.Equal(t, []time.Duration{
		200 * time.Millisecond,
		500 * time.Millisecond,
		800 * time.Millisecond,
	}, g.Delays())
	assert.Equal(t, 200*time.Millisecond, g.ChildDelay(-4))
}

func TestCSSDelay(t *testing.T) {
	assert.Equal(t, "0.30s", CSSDelay(Hero.DelayChildren))
	assert.Equal(t, "1.10s", CSSDelay(1100*time.Millisecond))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "visible", Visible.String())
}
