// Package block is the presentation-side implementation of item.Item: a
// value drawn as a bar that glides between slots and drops into place.
//
// Motion is advanced by Tick from the driver's frame loop. Every motion
// converges: horizontal travel eases toward its target and snaps when close,
// and the drop loses energy on each bounce until it rests.
package block

import (
	"math"
	"time"

	"github.com/bethropolis/stepsort/internal/types"
)

const (
	settleEpsilon = 0.01 // Slots; closer than this counts as arrived
	gravity       = 30.0 // Rows per second squared
	restitution   = 0.45
	minBounce     = 1.5 // Rows per second; slower impacts stop dead
)

// Block is one sortable value on screen.
type Block struct {
	value    int
	emphasis types.Emphasis

	x      float64 // Horizontal position in slot units
	target float64
	speed  float64 // Easing rate; higher settles faster

	lift float64 // Height above the floor in rows
	vy   float64
}

// New creates a block resting in slot.
func New(value, slot int, speed float64) *Block {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Block{
		value:  value,
		x:      float64(slot),
		target: float64(slot),
		speed:  speed,
	}
}

// DefaultSpeed is the easing rate used when none is configured.
const DefaultSpeed = 8.0

// Drop places the block offset from its slot and lifted above the floor so
// it has to settle before the first step can run.
func (b *Block) Drop(offset, height float64) {
	b.x = b.target + offset
	b.lift = math.Max(0, height)
	b.vy = 0
}

// Value is the number the block stands for.
func (b *Block) Value() int { return b.value }

// IsAnimating reports whether the block is off its slot or still bouncing.
func (b *Block) IsAnimating() bool {
	return math.Abs(b.x-b.target) > settleEpsilon || b.lift > 0 || b.vy != 0
}

// MoveTo retargets the block; Tick carries it there.
func (b *Block) MoveTo(slot int) { b.target = float64(slot) }

// SetEmphasis changes how the block is drawn.
func (b *Block) SetEmphasis(e types.Emphasis) { b.emphasis = e }

// Emphasis is the current visual state.
func (b *Block) Emphasis() types.Emphasis { return b.emphasis }

// Position returns the horizontal position in slots and the lift in rows.
func (b *Block) Position() (x, lift float64) { return b.x, b.lift }

// Target is the slot the block is heading to.
func (b *Block) Target() int { return int(math.Round(b.target)) }

// Tick advances the animation by dt.
func (b *Block) Tick(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	// Exponential ease toward the target, snapping once close.
	b.x += (b.target - b.x) * (1 - math.Exp(-b.speed*sec))
	if math.Abs(b.target-b.x) <= settleEpsilon {
		b.x = b.target
	}

	if b.lift > 0 || b.vy != 0 {
		b.vy -= gravity * sec
		b.lift += b.vy * sec
		if b.lift <= 0 {
			b.lift = 0
			if -b.vy < minBounce {
				b.vy = 0
			} else {
				b.vy = -b.vy * restitution
			}
		}
	}
}

// Snap ends every motion immediately.
func (b *Block) Snap() {
	b.x = b.target
	b.lift = 0
	b.vy = 0
}
