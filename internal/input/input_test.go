package input

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	keys, quit := Decode([]byte("w\x1b[Bd \x1b[D"))
	assert.False(t, quit)
	assert.Equal(t, []Key{KeyUp, KeyDown, KeyRight, KeyFire, KeyLeft}, keys)

	_, quit = Decode([]byte{'a', 0x03})
	assert.True(t, quit)

	keys, _ = Decode([]byte("\x1bw"))
	assert.Equal(t, []Key{KeyUp}, keys, "an escape without [ does not eat the next key")
}

func TestFromReaderAndPoller(t *testing.T) {
	var quits atomic.Int32
	keys := FromReader(strings.NewReader("\x1b[Aa q"), func() { quits.Add(1) })

	var got []Key
	for k := range keys {
		got = append(got, k)
	}
	assert.Equal(t, []Key{KeyUp, KeyLeft, KeyFire}, got)
	assert.Equal(t, int32(1), quits.Load())
}

func TestPollerFoldsPendingKeys(t *testing.T) {
	keys := make(chan Key, 8)
	p := NewPoller(keys)

	assert.Equal(t, Controls{}, p.Read())

	keys <- KeyUp
	keys <- KeyLeft
	keys <- KeyDown
	keys <- KeyFire
	assert.Equal(t, Controls{Rows: 1, Cols: -1, Fire: true}, p.Read())
	assert.Equal(t, Controls{}, p.Read(), "keys are consumed once")

	close(keys)
	assert.Equal(t, Controls{}, p.Read())
}

func TestTcellKeys(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Key
		quit bool
	}{
		{tcell.KeyUp, 0, KeyUp, false},
		{tcell.KeyLeft, 0, KeyLeft, false},
		{tcell.KeyRune, ' ', KeyFire, false},
		{tcell.KeyRune, 'd', KeyRight, false},
		{tcell.KeyRune, 'q', 0, true},
		{tcell.KeyRune, 'ű', 0, false},
		{tcell.KeyEscape, 0, 0, true},
		{tcell.KeyCtrlC, 0, 0, true},
	}
	for _, tt := range tests {
		k, quit := tcellKey(tt.key, tt.r)
		assert.Equal(t, tt.want, k)
		assert.Equal(t, tt.quit, quit)
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestMonitorHoldsAndReleases(t *testing.T) {
	keys := make(chan Key, 8)
	m := NewMonitor(keys, 60*time.Millisecond, quietLogger())
	m.Start(context.Background())
	defer func() { require.NoError(t, m.Stop(time.Second)) }()

	assert.Equal(t, Controls{}, m.Read())

	keys <- KeyRight
	keys <- KeyFire
	assert.Eventually(t, func() bool {
		return m.Read() == Controls{Cols: 1, Fire: true}
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return m.Read() == Controls{}
	}, time.Second, 5*time.Millisecond, "keys not repeated are released")
}

func TestMonitorReadKeepsLastSnapshot(t *testing.T) {
	m := NewMonitor(nil, time.Second, quietLogger())
	m.publish(Controls{Rows: -1})
	m.publish(Controls{Rows: 1})
	assert.Equal(t, Controls{Rows: 1}, m.Read(), "pipe keeps only the newest snapshot")
	assert.Equal(t, Controls{Rows: 1}, m.Read())
}

func TestMonitorStop(t *testing.T) {
	m := NewMonitor(make(chan Key), 30*time.Millisecond, quietLogger())
	assert.NoError(t, m.Stop(time.Millisecond), "stopping an idle monitor is a no-op")

	m.Start(context.Background())
	m.Start(context.Background())
	assert.NoError(t, m.Stop(time.Second))
	assert.NoError(t, m.Stop(time.Second))
}

func TestMonitorStopTimeout(t *testing.T) {
	m := NewMonitor(nil, time.Second, quietLogger())
	// A listener that never observes cancellation.
	m.cancel = func() {}
	m.done = make(chan struct{})
	assert.ErrorIs(t, m.Stop(10*time.Millisecond), ErrStopTimeout)
}
