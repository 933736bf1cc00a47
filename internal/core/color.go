package core

import "strconv"

// Color is a semantic foreground color for a screen cell. The platform
// maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWater
	ColorFoam
	ColorBank
	ColorRock
	ColorLog
	ColorIce
	ColorLava
	ColorCoin
	ColorGem
	ColorPowerUp
	ColorPlayer
	ColorHit
	ColorShield
	ColorGhost
	ColorHUD
	ColorWarning
	ColorDim
)

var ansiCodes = [...]int{
	ColorDefault: -1,
	ColorWater:   25,
	ColorFoam:    153,
	ColorBank:    28,
	ColorRock:    245,
	ColorLog:     130,
	ColorIce:     195,
	ColorLava:    202,
	ColorCoin:    220,
	ColorGem:     213,
	ColorPowerUp: 51,
	ColorPlayer:  180,
	ColorHit:     196,
	ColorShield:  39,
	ColorGhost:   250,
	ColorHUD:     15,
	ColorWarning: 214,
	ColorDim:     240,
}

// ANSI returns the 256-color code of c as a string, or "" for the
// terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) || ansiCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
