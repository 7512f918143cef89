package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lucky-slots/constants"
	"github.com/lixenwraith/lucky-slots/slot"
)

// SoundManager manages all game audio through one mixer on the global speaker
type SoundManager struct {
	mu           sync.Mutex
	rate         beep.SampleRate
	mixer        *beep.Mixer
	spinStreamer *beep.Ctrl
	initialized  bool
	muted        bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(constants.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker, safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker shutdown, clearing the mixer leaves it silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.spinStreamer != nil {
		sm.spinStreamer.Paused = true
		sm.spinStreamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new value, muting silences the reel loop
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted {
		sm.stopSpinLocked()
	}
	return sm.muted
}

// SetMuted forces the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted {
		sm.stopSpinLocked()
	}
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlaySpin starts the reel ticker loop
func (sm *SoundManager) PlaySpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.audible() {
		return
	}

	// If already playing, don't restart
	if sm.spinStreamer != nil && !sm.spinStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewReelTicker(sm.rate), Paused: false}
	sm.spinStreamer = ctrl
	sm.add(ctrl)
}

// StopSpin silences the reel ticker
func (sm *SoundManager) StopSpin() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopSpinLocked()
}

// PlayWin plays the pair chime
func (sm *SoundManager) PlayWin() { sm.playOnce(CreateWinSound) }

// PlayJackpot plays the jackpot arpeggio
func (sm *SoundManager) PlayJackpot() { sm.playOnce(CreateJackpotSound) }

// PlayGameOver plays the descending sweep
func (sm *SoundManager) PlayGameOver() { sm.playOnce(CreateGameOverSound) }

// PlayDenied plays the rejected-spin buzz
func (sm *SoundManager) PlayDenied() { sm.playOnce(CreateDeniedSound) }

// HandleEvent maps machine events to sounds, intended for Machine.Subscribe
func (sm *SoundManager) HandleEvent(ev slot.Event) {
	switch ev.Type {
	case slot.EventSpinStarted:
		sm.PlaySpin()
	case slot.EventSpinResolved:
		sm.StopSpin()
		switch {
		case ev.Outcome.Jackpot:
			sm.PlayJackpot()
		case ev.Outcome.WinAmount > 0:
			sm.PlayWin()
		}
	case slot.EventGameOver:
		sm.PlayGameOver()
	case slot.EventReset:
		sm.StopSpin()
	}
}

func (sm *SoundManager) playOnce(create func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.audible() {
		return
	}
	sm.add(create(sm.rate))
}

func (sm *SoundManager) stopSpinLocked() {
	if sm.spinStreamer == nil {
		return
	}
	speaker.Lock()
	sm.spinStreamer.Paused = true
	sm.spinStreamer.Streamer = nil
	speaker.Unlock()
	sm.spinStreamer = nil
}

// add pushes s into the playing mixer under the speaker lock
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) audible() bool {
	return sm.initialized && !sm.muted
}
