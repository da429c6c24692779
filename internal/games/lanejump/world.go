package lanejump

import (
	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/motion"
	"github.com/vovakirdan/lanejump/internal/road"
	"github.com/vovakirdan/lanejump/internal/round"
)

// block is a placed road block.
type block struct {
	pos core.Vec3
}

func (b *block) Place(pos core.Vec3) {
	b.pos = pos
}

// blockSet is the render-side block factory.
type blockSet struct {
	blocks []*block
}

func (s *blockSet) Spawn(kind road.TileKind) (round.Block, bool) {
	if kind != road.Solid {
		return nil, false
	}
	b := &block{}
	s.blocks = append(s.blocks, b)
	return b, true
}

func (s *blockSet) Clear() {
	s.blocks = s.blocks[:0]
}

type menu struct {
	visible bool
}

func (m *menu) SetVisible(v bool) {
	m.visible = v
}

type label struct {
	text string
}

func (l *label) SetText(s string) {
	l.text = s
}

// clipPlayer tracks the clip a sprite is showing.
type clipPlayer struct {
	clip  string
	rates map[string]float64
	phase float64 // Advances with time scaled by the clip rate
}

func newClipPlayer() *clipPlayer {
	return &clipPlayer{clip: motion.ClipIdle, rates: make(map[string]float64)}
}

func (p *clipPlayer) Play(clip string) {
	p.clip = clip
	p.phase = 0
}

func (p *clipPlayer) SetRate(clip string, rate float64) {
	p.rates[clip] = rate
}

func (p *clipPlayer) advance(dt float64) {
	rate, ok := p.rates[p.clip]
	if !ok {
		rate = 1
	}
	p.phase += dt * rate
}
