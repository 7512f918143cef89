package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SchedulerQueueSize is the capacity of the deferred task channel drained by the main loop
	SchedulerQueueSize = 16

	// EventQueueSize is the capacity of the terminal input event channel
	EventQueueSize = 256
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file inside LogDir
	LogFileName = "lucky-slots.log"

	// LogMaxSizeMB is the size at which the debug log rotates
	LogMaxSizeMB = 1

	// LogMaxBackups is the number of rotated logs kept
	LogMaxBackups = 3

	// LogMaxAgeDays is how long rotated logs are kept
	LogMaxAgeDays = 7
)
