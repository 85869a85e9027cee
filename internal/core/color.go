package core

// Color is a screen cell's color role. The host maps roles to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorApple
	ColorText
	ColorGridLine
)
