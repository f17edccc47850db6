package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/motion/anim"
	"github.com/milk9111/motion/choreo"
	"github.com/milk9111/motion/common"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 480
	screenHeight = 320
)

var playKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

type Game struct {
	lib   *choreo.Library
	file  string
	sched *anim.Scheduler

	boxes  []*box
	byName map[string]*box
	ui     *ebitenui.UI
	face   ebtext.Face

	mu     sync.Mutex
	seq    *anim.Sequence
	status string
}

func NewGame(lib *choreo.Library, file string, sched *anim.Scheduler) (*Game, error) {
	f, err := lib.File(file)
	if err != nil {
		return nil, err
	}

	g := &Game{
		lib:    lib,
		file:   file,
		sched:  sched,
		byName: make(map[string]*box),
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		status: "1-3 play, S stop, H hide card",
	}
	layout := map[string][4]float64{
		"title": {80, 60, 320, 40},
		"card":  {80, 140, 160, 100},
		"badge": {300, 160, 60, 60},
	}
	palette := []color.NRGBA{
		{R: 0x3a, G: 0x6e, B: 0xa5, A: 0xff},
		{R: 0x4c, G: 0x9a, B: 0x5b, A: 0xff},
		{R: 0xc0, G: 0x7a, B: 0x2c, A: 0xff},
	}
	for i, name := range f.Targets() {
		r, ok := layout[name]
		if !ok {
			r = [4]float64{20 + float64(i)*70, 250, 60, 40}
		}
		b := newBox(name, r[0], r[1], r[2], r[3], palette[i%len(palette)])
		g.boxes = append(g.boxes, b)
		g.byName[name] = b
	}
	g.ui = newControls(g, f.SequenceNames())
	return g, nil
}

func (g *Game) resolve(name string) (anim.Target, bool) {
	b, ok := g.byName[name]
	return b, ok
}

func (g *Game) play(sequence string) {
	f, err := g.lib.File(g.file)
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	specs, err := f.Sequence(sequence, g.resolve)
	if err != nil {
		g.setStatus(err.Error())
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq != nil {
		g.seq.Cancel()
	}
	seq, err := g.sched.StartSequence(specs, func(*anim.Sequence) {
		g.setStatus(sequence + " done")
	})
	if err != nil {
		g.status = err.Error()
		return
	}
	g.seq = seq
	g.status = "playing " + sequence
}

func (g *Game) stop() {
	g.sched.StopAll()
	g.setStatus("stopped")
}

func (g *Game) toggleCard() {
	b, ok := g.byName["card"]
	if !ok {
		return
	}
	hidden := !b.hidden.Load()
	b.hidden.Store(hidden)
	if hidden {
		g.setStatus("card hidden")
	} else {
		g.setStatus("card shown")
	}
}

func (g *Game) reloaded(name string, err error) {
	if err != nil {
		g.setStatus(fmt.Sprintf("reload %s: %v", name, err))
		return
	}
	g.setStatus("reloaded " + name)
}

func (g *Game) setStatus(s string) {
	g.mu.Lock()
	g.status = s
	g.mu.Unlock()
}

func (g *Game) Update() error {
	g.ui.Update()

	f, err := g.lib.File(g.file)
	if err != nil {
		return nil
	}
	names := f.SequenceNames()
	for i, key := range playKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			g.play(names[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.toggleCard()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x18, 0x18, 0x20, 0xff})

	for _, b := range g.boxes {
		if !b.Exists() {
			continue
		}
		s := b.state()
		fill := s.fill
		fill.A = uint8(common.Clamp01(s.opacity) * float64(fill.A))
		vector.FillRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), fill, false)
		vector.StrokeRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), 2, s.border, false)

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(s.x+4, s.y+4)
		ebtext.Draw(screen, b.name, g.face, op)
	}

	g.ui.Draw(screen)

	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, screenHeight-20)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
	ebtext.Draw(screen, fmt.Sprintf("%s  active=%d", status, g.sched.ActiveCount()), g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
