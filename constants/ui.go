package constants

// UI Text
const (
	TitleText         = "Lucky Slots"
	JackpotText       = "JACKPOT!"
	GameOverText      = "Game Over"
	RestartText       = "Restart Game [r]"
	TooSmallText      = "terminal too small"
	CreditsFormat     = "Credits: $%d"
	WinFormat         = "You won $%d!"
	SpinFormat        = " Spin! ($%d) "
	SpinningText      = " Spinning... "
	HelpText          = "[space] spin  [r] restart  [m] mute  [q] quit"
	TallyFormat       = "spins %d  won $%d  best $%d  jackpots %d"
	MutedIndicator    = "muted"
	UnknownGlyph      = "❓"
	UnknownASCIIGlyph = "???"
)

// UI Layout
const (
	// MinScreenWidth is the narrowest terminal the full layout fits in
	MinScreenWidth = 44

	// MinScreenHeight is the shortest terminal the full layout fits in
	MinScreenHeight = 18

	// ReelCellWidth is the inner width of one reel window
	ReelCellWidth = 6

	// ReelSpinFrameDivisor slows the reel cycling animation relative to the frame rate
	ReelSpinFrameDivisor = 4
)
