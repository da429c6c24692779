package motion

// Clip names understood by the animation players.
const (
	ClipOneStep = "one_step" // body hop over one tile
	ClipTwoStep = "two_step" // body hop over two tiles
	ClipJump    = "jump"     // skeletal jump
	ClipIdle    = "idle"     // skeletal idle
)

// Player plays named animation clips.
type Player interface {
	Play(clip string)
}

// RatePlayer is a Player that can also change a clip's playback rate.
type RatePlayer interface {
	Player
	SetRate(clip string, rate float64)
}

func play(p Player, clip string) {
	if p == nil {
		return
	}
	p.Play(clip)
}

func playAt(p Player, clip string, rate float64) {
	if p == nil {
		return
	}
	if rp, ok := p.(RatePlayer); ok {
		rp.SetRate(clip, rate)
	}
	p.Play(clip)
}

func bodyClip(step int) string {
	if step == 2 {
		return ClipTwoStep
	}
	return ClipOneStep
}
