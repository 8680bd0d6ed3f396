package navigation

import (
	"math"
	"time"
)

const (
	DefaultCarouselSteps    = 6
	DefaultCarouselInterval = 8 * time.Second

	// rotationOffset aligns the highlight arc with the first node
	rotationOffset = 150.0
)

// Carousel models the auto-advancing process loop. Active is the step shown
// in the detail panel; cumulative counts every forward move so the highlight
// arc keeps rotating in one direction.
type Carousel struct {
	steps      int
	interval   time.Duration
	active     int
	cumulative int
	hovered    bool
	elapsed    time.Duration
}

func NewCarousel(steps int, interval time.Duration) *Carousel {
	if steps < 1 {
		steps = DefaultCarouselSteps
	}
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{steps: steps, interval: interval}
}

func (c *Carousel) Steps() int { return c.steps }
func (c *Carousel) Interval() time.Duration { return c.interval }
func (c *Carousel) Active() int { return c.active }
func (c *Carousel) Cumulative() int { return c.cumulative }
func (c *Carousel) Hovered() bool { return c.hovered }

// Tick advances the clock by d and returns how many steps were taken.
// Nothing moves while the carousel is hovered.
func (c *Carousel) Tick(d time.Duration) int {
	if c.hovered || d <= 0 {
		return 0
	}
	c.elapsed += d
	moved := 0
	for c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.active = (c.active + 1) % c.steps
		c.cumulative++
		moved++
	}
	return moved
}

// Activate moves forward to step i by the shortest forward distance
func (c *Carousel) Activate(i int) bool {
	if i < 0 || i >= c.steps {
		return false
	}
	diff := (i - c.active + c.steps) % c.steps
	if diff == 0 {
		return false
	}
	c.cumulative += diff
	c.active = i
	return true
}

// Enter is a pointer resting on node i: it activates the node and pauses
// rotation until the pointer leaves.
func (c *Carousel) Enter(i int) {
	c.Activate(i)
	c.hovered = true
	c.elapsed = 0
}

// Rotation is the highlight arc angle in degrees
func (c *Carousel) Rotation() float64 {
	return float64(c.cumulative)*(360/float64(c.steps)) - rotationOffset
}

// Point is an offset from the carousel centre in pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Nodes places the steps on a circle of the given radius, step 0 at the top
// and the rest clockwise.
func (c *Carousel) Nodes(radius float64) []Point {
	points := make([]Point, c.steps)
	for i := range points {
		angle := float64(i) * 360 / float64(c.steps)
		rad := (angle - 90) * math.Pi / 180
		points[i] = Point{
			X: round2(math.Cos(rad) * radius),
			Y: round2(math.Sin(rad) * radius),
		}
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
