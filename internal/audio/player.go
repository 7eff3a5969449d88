package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gridcaster/internal/game"
)

// Player mixes effects onto the speaker. A Player that was never initialised
// or is muted silently drops every request.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	ambience *beep.Ctrl
	ready    bool
	muted    bool
	seed     int64

	stepping atomic.Bool
}

// NewPlayer returns an idle player.
func NewPlayer(muted bool) *Player {
	return &Player{mixer: &beep.Mixer{}, muted: muted}
}

// Init opens the speaker. Failure leaves the player silent; the error is
// returned for logging only.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready || p.muted {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Handle plays the sounds for a frame's game events.
func (p *Player) Handle(ev game.Events) {
	if ev.Has(game.EventMoved) {
		p.Footstep()
	}
	if ev.Has(game.EventVictory) {
		p.Victory()
	}
}

// Footstep plays a step unless the previous one is still sounding.
func (p *Player) Footstep() {
	if !p.active() {
		return
	}
	if s := p.nextFootstep(); s != nil {
		p.add(s)
	}
}

// Select plays the menu confirmation blip.
func (p *Player) Select() {
	if p.active() {
		p.add(Select(SampleRate))
	}
}

// Victory plays the level-complete jingle.
func (p *Player) Victory() {
	if p.active() {
		p.add(Victory(SampleRate))
	}
}

// StartAmbience replaces the current drone with the one for level.
func (p *Player) StartAmbience(level string) {
	p.StopAmbience()
	if !p.active() {
		return
	}
	ctrl := &beep.Ctrl{Streamer: Ambience(SampleRate, level)}
	p.mu.Lock()
	p.ambience = ctrl
	p.mu.Unlock()
	p.add(ctrl)
}

// StopAmbience ends the drone. The mixer drops it on its next pass.
func (p *Player) StopAmbience() {
	p.mu.Lock()
	ctrl := p.ambience
	p.ambience = nil
	ready := p.ready
	p.mu.Unlock()
	if ctrl == nil {
		return
	}
	if ready {
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return
	}
	ctrl.Streamer = nil
}

// nextFootstep returns a footstep that clears the stepping flag when it ends,
// or nil while one is already playing.
func (p *Player) nextFootstep() beep.Streamer {
	if !p.stepping.CompareAndSwap(false, true) {
		return nil
	}
	p.mu.Lock()
	p.seed++
	seed := p.seed
	p.mu.Unlock()
	return beep.Seq(Footstep(SampleRate, seed), beep.Callback(func() {
		p.stepping.Store(false)
	}))
}

func (p *Player) active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready && !p.muted
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// InitOrWarn initialises p and logs instead of failing, since the game is
// playable without sound.
func InitOrWarn(p *Player) {
	if err := p.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
}
