package colorscheme

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// flippingDetector reports light first and dark on every later poll.
type flippingDetector struct {
	polls atomic.Int32
}

func (*flippingDetector) Name() string    { return "flipping" }
func (*flippingDetector) Priority() int   { return 10 }
func (*flippingDetector) Available() bool { return true }

func (d *flippingDetector) Detect() (bool, bool) {
	return d.polls.Add(1) > 1, true
}

func TestWatch_PollsAndNotifies(t *testing.T) {
	r := NewResolver()
	r.RegisterDetector(&flippingDetector{})

	flipped := make(chan Preference, 1)
	r.OnChange(func(p Preference) {
		select {
		case flipped <- p:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, r, 10*time.Millisecond) }()

	select {
	case p := <-flipped:
		assert.True(t, p.PrefersDark)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never observed the preference flip")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
