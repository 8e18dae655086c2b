package core

import (
	"errors"
	"math"
)

// Transform is a card's on-screen placement, a pure function of its distance
// from the fractional index plus the bounded live-drag shift.
type Transform struct {
	Translate float64
	Scale     float64
	Visible   bool
}

// CarouselConfig holds the policy inputs for one card deck.
type CarouselConfig struct {
	// CardCount is the fixed number of peer cards. Required, at least 1.
	CardCount int
	// CardSpacing is one card slot's worth of travel. Required.
	CardSpacing float64
	// DistanceThreshold is the release displacement beyond which the active
	// index steps by one. The carousel deliberately commits by distance
	// only, never velocity: overshoot past one neighbor in a single gesture
	// is not allowed, so the simpler rule is enough. Default 0.3*CardSpacing.
	DistanceThreshold float64
	// TranslateStops are slot multiples at distance 0, 1 and 2; cards fan
	// out symmetrically. Default {0, 1.0, 1.7}.
	TranslateStops [3]float64
	// ScaleStops shrink with distance; the center card is largest.
	// Default {1.0, 0.85, 0.72}.
	ScaleStops [3]float64
	Spring     SpringConfig

	// OnActiveIndexChanged fires exactly once per settled index change,
	// never during intermediate drag frames.
	OnActiveIndexChanged func(index int)
}

func (c CarouselConfig) withDefaults() CarouselConfig {
	if c.DistanceThreshold <= 0 {
		c.DistanceThreshold = 0.3 * c.CardSpacing
	}
	if c.TranslateStops == ([3]float64{}) {
		c.TranslateStops = [3]float64{0, 1.0, 1.7}
	}
	if c.ScaleStops == ([3]float64{}) {
		c.ScaleStops = [3]float64{1.0, 0.85, 0.72}
	}
	return c
}

// CarouselController owns the active-card index for a fixed set of peer
// cards. It tracks one continuous fractional index; every card's transform
// derives from (cardIndex - fractionalIndex), so the math never depends on
// what the cards contain.
type CarouselController struct {
	cfg        CarouselConfig
	fractional *Animatable
	active     int
	dragging   bool
	dragDX     float64
	goTarget   *int
}

func NewCarouselController(cfg CarouselConfig) (*CarouselController, error) {
	if cfg.CardCount < 1 {
		return nil, errors.New("glide: carousel needs at least one card")
	}
	if cfg.CardSpacing <= 0 {
		return nil, errors.New("glide: carousel card spacing must be positive")
	}
	return &CarouselController{cfg: cfg.withDefaults(), fractional: NewAnimatable(cfg.Spring)}, nil
}

// ActiveIndex is the only externally durable value.
func (c *CarouselController) ActiveIndex() int { return c.active }

// FractionalIndex is ephemeral animation state; it may overshoot the index
// bounds while a release settles.
func (c *CarouselController) FractionalIndex() float64 { return c.fractional.Value() }

func (c *CarouselController) CardCount() int { return c.cfg.CardCount }

// Dragging reports whether a claimed drag is in progress.
func (c *CarouselController) Dragging() bool { return c.dragging }

// Animating reports whether the fractional index is settling.
func (c *CarouselController) Animating() bool { return c.fractional.Active() }

// BeginDrag enters the dragging state once the arbiter has claimed the
// pointer for this deck. The fractional index is clamped back into bounds
// before the gesture takes over, and any in-flight settle or queued GoTo is
// cancelled.
func (c *CarouselController) BeginDrag() {
	if c.dragging {
		return
	}
	c.fractional.Cancel()
	c.goTarget = nil
	c.fractional.Snap(clamp(c.fractional.Value(), 0, float64(c.cfg.CardCount-1)))
	c.dragging = true
	c.dragDX = 0
}

// Drag records the live pointer displacement. The deck follows the finger
// through the bounded shift in TransformFor, capped at one card slot.
func (c *CarouselController) Drag(s Sample) {
	if !c.dragging {
		return
	}
	c.dragDX = s.DX
}

// Release commits the gesture: displacement beyond DistanceThreshold steps
// the active index by exactly one in the drag's direction, clamped to the
// deck; anything less leaves the index unchanged. The fractional index then
// springs to the committed integer.
func (c *CarouselController) Release(s Sample) {
	if !c.dragging {
		return
	}
	c.dragging = false
	target := c.active
	if math.Abs(s.DX) >= c.cfg.DistanceThreshold {
		if s.DX < 0 {
			target++
		} else {
			target--
		}
		target = clampInt(target, 0, c.cfg.CardCount-1)
	}
	// Fold the live shift into the fractional index so the settle starts
	// where the finger left the deck, then spring to the target.
	shift := clamp(s.DX, -c.cfg.CardSpacing, c.cfg.CardSpacing)
	c.fractional.Snap(c.fractional.Value() - shift/c.cfg.CardSpacing)
	c.dragDX = 0
	c.settleTo(target, -s.VX*1000/c.cfg.CardSpacing)
}

// Cancel resolves a platform-interrupted gesture as a release with zero
// velocity at the last known displacement; the fractional index is never
// left in a non-terminal value.
func (c *CarouselController) Cancel() {
	if !c.dragging {
		return
	}
	c.Release(Sample{DX: c.dragDX})
}

// GoTo navigates programmatically as a sequence of single-step commits, one
// settle per step, so the transform math never sees a jump larger than one.
// Out-of-range targets clamp silently.
func (c *CarouselController) GoTo(index int) {
	if c.dragging {
		return
	}
	index = clampInt(index, 0, c.cfg.CardCount-1)
	if index == c.active && !c.fractional.Active() {
		return
	}
	c.goTarget = &index
	if !c.fractional.Active() {
		c.stepTowardGoal()
	}
}

// TransformFor computes card i's placement from its distance to the
// fractional index. Cards more than two positions away are not rendered; a
// windowing decision, not a correctness one.
func (c *CarouselController) TransformFor(i int) Transform {
	d := float64(i) - c.fractional.Value()
	ad := math.Abs(d)
	if ad > 2 {
		return Transform{}
	}
	translate := math.Copysign(interpStops(ad, c.cfg.TranslateStops), d) * c.cfg.CardSpacing
	if c.dragging {
		translate += clamp(c.dragDX, -c.cfg.CardSpacing, c.cfg.CardSpacing)
	}
	return Transform{
		Translate: translate,
		Scale:     interpStops(ad, c.cfg.ScaleStops),
		Visible:   true,
	}
}

// ZOrder lists card indices back-to-front by descending distance from the
// active index, so the active and incoming cards always occlude their
// neighbors regardless of list order.
func (c *CarouselController) ZOrder() []int {
	order := make([]int, c.cfg.CardCount)
	for i := range order {
		order[i] = i
	}
	// Insertion sort: decks are small and the tie-break (lower index stays
	// behind) must be stable.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && distFromActive(order[j], c.active) > distFromActive(order[j-1], c.active); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// Tick advances the settle by one frame and reports whether the deck still
// needs frames.
func (c *CarouselController) Tick() bool {
	c.fractional.Tick()
	return c.fractional.Active()
}

func (c *CarouselController) settleTo(target int, velocity float64) {
	c.fractional.Start(float64(target), velocity, func() { c.finishSettle(target) })
}

func (c *CarouselController) finishSettle(target int) {
	was := c.active
	c.active = target
	if target != was && c.cfg.OnActiveIndexChanged != nil {
		c.cfg.OnActiveIndexChanged(target)
	}
	if c.goTarget != nil {
		if *c.goTarget == c.active {
			c.goTarget = nil
		} else {
			c.stepTowardGoal()
		}
	}
}

func (c *CarouselController) stepTowardGoal() {
	next := c.active
	if *c.goTarget > c.active {
		next++
	} else if *c.goTarget < c.active {
		next--
	}
	c.settleTo(next, 0)
}

func distFromActive(i, active int) int {
	d := i - active
	if d < 0 {
		return -d
	}
	return d
}

func interpStops(x float64, stops [3]float64) float64 {
	switch {
	case x <= 0:
		return stops[0]
	case x < 1:
		return lerp(stops[0], stops[1], x)
	case x < 2:
		return lerp(stops[1], stops[2], x-1)
	default:
		return stops[2]
	}
}
