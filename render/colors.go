package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbDimText    = tcell.NewRGBColor(120, 120, 120) // Mid gray for footer

	RgbTitle    = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbCredits  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbReelBox  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbWin      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbGameOver = tcell.NewRGBColor(255, 80, 80)   // Normal red

	// Jackpot banner alternates between these
	RgbJackpotA = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbJackpotB = tcell.NewRGBColor(255, 105, 180) // Hot pink

	RgbButtonBg         = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbButtonText       = tcell.NewRGBColor(0, 0, 0)       // Dark text on button
	RgbButtonDisabledBg = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbButtonDisabledFg = tcell.NewRGBColor(140, 140, 140) // Light gray
)

// Styles derived from the palette
var (
	defaultStyle        = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	titleStyle          = defaultStyle.Foreground(RgbTitle).Bold(true)
	creditsStyle        = defaultStyle.Foreground(RgbCredits)
	reelBoxStyle        = defaultStyle.Foreground(RgbReelBox)
	winStyle            = defaultStyle.Foreground(RgbWin).Bold(true)
	gameOverStyle       = defaultStyle.Foreground(RgbGameOver).Bold(true)
	footerStyle         = defaultStyle.Foreground(RgbDimText)
	buttonStyle         = defaultStyle.Background(RgbButtonBg).Foreground(RgbButtonText).Bold(true)
	buttonDisabledStyle = defaultStyle.Background(RgbButtonDisabledBg).Foreground(RgbButtonDisabledFg)
)

// jackpotStyle flashes the banner every few frames
func jackpotStyle(frame int64) tcell.Style {
	if (frame/8)%2 == 0 {
		return defaultStyle.Foreground(RgbJackpotA).Bold(true)
	}
	return defaultStyle.Foreground(RgbJackpotB).Bold(true)
}
