package core

// Sprite identifies an image the host knows how to draw at a grid cell.
type Sprite int

const (
	SpriteHead Sprite = iota
	SpriteBody
	SpriteApple
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteHead:
		return "head"
	case SpriteBody:
		return "body"
	case SpriteApple:
		return "apple"
	default:
		return "unknown"
	}
}

// Canvas receives draw calls in world coordinates.
// Hosts own the projection from world units to whatever they display.
type Canvas interface {
	// DrawSprite draws sprite s on the cell whose origin is (x, y).
	DrawSprite(s Sprite, x, y int)
	// DrawText draws text centered on the anchor (x, y).
	DrawText(text string, x, y int)
}

// Rand is the source of randomness for apple placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Context bundles the collaborators a game session talks to.
// The host builds it once and passes it explicitly on every call.
type Context struct {
	Keys   KeySource
	Canvas Canvas
	Rand   Rand
}

// NewContext creates a context from its collaborators.
func NewContext(keys KeySource, canvas Canvas, rng Rand) *Context {
	return &Context{
		Keys:   keys,
		Canvas: canvas,
		Rand:   rng,
	}
}
