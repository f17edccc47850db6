package main

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/milk9111/motion/anim"
	"github.com/milk9111/motion/choreo"
)

// box is an on-screen rectangle driven by the scheduler. SetProperty is
// called from the scheduler goroutine while Draw runs on the game loop.
type box struct {
	name string
	w, h float64
	fill color.NRGBA

	hidden atomic.Bool

	mu      sync.Mutex
	x, y    float64
	opacity float64
	scale   float64
	offsetY float64
	border  color.NRGBA
}

type boxState struct {
	x, y, w, h float64
	opacity    float64
	fill       color.NRGBA
	border     color.NRGBA
}

func newBox(name string, x, y, w, h float64, fill color.NRGBA) *box {
	return &box{
		name:    name,
		w:       w,
		h:       h,
		fill:    fill,
		x:       x,
		y:       y,
		opacity: 1,
		scale:   1,
		border:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

func (b *box) SetProperty(name string, value any) error {
	if name == anim.PropBorderColor {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: %s wants a color string, got %T", b.name, name, value)
		}
		c, err := choreo.ParseColor(s)
		if err != nil {
			return err
		}
		b.mu.Lock()
		b.border = c.NRGBA
		b.mu.Unlock()
		return nil
	}

	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("%s: %s wants a float64, got %T", b.name, name, value)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	switch name {
	case anim.PropOpacity:
		b.opacity = f
	case anim.PropScale:
		b.scale = f
	case anim.PropX:
		b.x = f
	case anim.PropY:
		b.y = f
	case anim.PropOffsetY:
		b.offsetY = f
	default:
		return fmt.Errorf("%s: unknown property %q", b.name, name)
	}
	return nil
}

func (b *box) GetProperty(name string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch name {
	case anim.PropOpacity:
		return b.opacity, true
	case anim.PropScale:
		return b.scale, true
	case anim.PropX:
		return b.x, true
	case anim.PropY:
		return b.y, true
	case anim.PropOffsetY:
		return b.offsetY, true
	case anim.PropBorderColor:
		return choreo.Color{NRGBA: b.border}.Hex(), true
	}
	return nil, false
}

// Exists reports false while the box is hidden, which makes the scheduler
// drop any animation still running on it.
func (b *box) Exists() bool {
	return !b.hidden.Load()
}

// state returns the box geometry with scale applied around its center.
func (b *box) state() boxState {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, h := b.w*b.scale, b.h*b.scale
	return boxState{
		x:       b.x + (b.w-w)/2,
		y:       b.y + (b.h-h)/2 - b.offsetY,
		w:       w,
		h:       h,
		opacity: b.opacity,
		fill:    b.fill,
		border:  b.border,
	}
}
