package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound Timing
const (
	DeniedSoundDuration   = 150 * time.Millisecond
	WinNoteDuration       = 120 * time.Millisecond
	JackpotNoteDuration   = 140 * time.Millisecond
	GameOverSoundDuration = 600 * time.Millisecond

	// ReelTickInterval is the gap between clicks of the spinning reel loop
	ReelTickInterval = 70 * time.Millisecond
)

// Sound Pitch (Hz)
const (
	DeniedFrequency   = 120.0
	GameOverFrequency = 90.0
	ReelTickFrequency = 1800.0
)
