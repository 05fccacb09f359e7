package audio

import (
	"ribbon-defense/internal/event"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.5
)

// CueFor maps a game event to the cue it plays.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.ShotFired:
		return CueShot, true
	case event.EnemyDestroyed:
		return CueKill, true
	case event.EnemyLeaked:
		return CueLeak, true
	case event.BaseDepleted:
		return CueGameOver, true
	}
	return 0, false
}

// SoundManager plays cues for game events. Without Initialize the cues
// are mixed but never reach a speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.ShotFired, event.EnemyDestroyed, event.EnemyLeaked, event.BaseDepleted)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := CueFor(e.Type); ok {
		sm.Play(cue)
	}
}

// Play adds one cue to the mix.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := NewCue(c, sampleRate, sm.volume)
	if sm.initialized {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
		return
	}
	sm.mixer.Add(s)
}

// Pending returns how many cues are still playing.
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
