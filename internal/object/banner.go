package object

import "github.com/tomz197/spacegarbage/internal/draw"

// Permanent makes a banner stay until it is replaced.
const Permanent = -1

// Banner slides a line of text into the middle of the footer, holds it and
// erases it. A cancelled banner erases whatever it has drawn on its next
// update and finishes.
type Banner struct {
	Text  string
	Ticks int // Hold time once centred, or Permanent

	col     float64
	stop    float64
	started bool
	holding bool
	drawn   bool

	cancelled bool
	done      bool
	sleep     Sleep
}

// NewBanner creates a banner that holds for ticks once centred.
func NewBanner(text string, ticks int) *Banner {
	return &Banner{Text: text, Ticks: ticks}
}

// Cancel asks the banner to erase itself and finish.
func (b *Banner) Cancel() {
	b.cancelled = true
}

// Done reports whether the banner has finished.
func (b *Banner) Done() bool {
	return b.done
}

// Update moves the banner one step.
func (b *Banner) Update(ctx UpdateContext) (bool, error) {
	if b.cancelled {
		b.erase(ctx)
		b.done = true
		return true, nil
	}
	if b.sleep.Pending() {
		return false, nil
	}

	if !b.started {
		_, cols := ctx.Footer.Size()
		width, _ := draw.FrameSize(b.Text)
		b.col = float64(-width)
		b.stop = float64((cols - width) / 2)
		b.started = true
	} else if b.holding {
		b.erase(ctx)
		b.done = true
		return true, nil
	} else {
		b.erase(ctx)
		b.col += float64(ctx.Settings.BannerStep)
	}

	b.col = min(b.col, b.stop)
	draw.Frame(ctx.Footer, 0, b.col, b.Text, false)
	b.drawn = true
	if b.col < b.stop {
		return false, nil
	}

	b.holding = true
	switch {
	case b.Ticks == Permanent:
		b.sleep.Start(int(^uint(0) >> 1))
	case b.Ticks <= 0:
		b.erase(ctx)
		b.done = true
		return true, nil
	default:
		b.sleep.Start(b.Ticks)
	}
	return false, nil
}

func (b *Banner) erase(ctx UpdateContext) {
	if b.drawn {
		draw.Frame(ctx.Footer, 0, b.col, b.Text, true)
		b.drawn = false
	}
}

// BannerSlot keeps at most one banner on the footer. Showing a new banner
// cancels the current one.
type BannerSlot struct {
	active *Banner
}

// Show cancels the current banner and spawns b in its place.
func (s *BannerSlot) Show(sp Spawner, b *Banner) {
	if s.active != nil && !s.active.Done() {
		s.active.Cancel()
	}
	s.active = b
	sp.Spawn(b)
}

// Active returns the banner shown last, if any.
func (s *BannerSlot) Active() *Banner {
	return s.active
}
