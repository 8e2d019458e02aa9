package runner

import "github.com/vovakirdan/aplus-runner/internal/core"

// Sprite is how the renderer draws an entity on a character screen.
// Fallback is set when the provider had no art for the request and
// substituted a plain colour block.
type Sprite struct {
	Glyph    rune
	Color    core.Color
	Fallback bool
}

// AssetProvider resolves art for every drawable. Implementations never fail:
// unknown requests return a fallback sprite.
type AssetProvider interface {
	Runner(id CharacterID, pose Pose, frame int) Sprite
	Obstacle(t ObstacleType, chapter, variant int) Sprite
	Platform(t PlatformType) Sprite
	Pit() Sprite
	Item(k ItemKind) Sprite
	Collectible() Sprite
	SpeedLine() Sprite
	EffectColor(k EffectKind) core.Color
}

// characterColors are the signature colours of the six runners.
var characterColors = map[CharacterID]core.Color{
	CharacterA: core.ColorRed,
	CharacterB: core.ColorGreen,
	CharacterC: core.ColorBlue,
	CharacterD: core.ColorYellow,
	CharacterE: core.ColorCyan,
	CharacterF: core.ColorMagenta,
}

// obstacleGlyphs is the art pool per chapter, indexed by variant.
var obstacleGlyphs = map[int][obstacleArtVariants]rune{
	1: {'▓', '▒', '█'},
	2: {'╬', '▓', '#'},
	3: {'█', '▚', '▞'},
}

var obstacleColors = map[int]core.Color{
	1: core.ColorGreen,
	2: core.ColorOrange,
	3: core.ColorBrightRed,
}

var runFrames = []rune{'█', '▙', '▟'}

// GlyphAssets is the built-in terminal art set.
type GlyphAssets struct{}

// Runner returns the runner sprite for a pose and run-animation frame.
func (GlyphAssets) Runner(id CharacterID, pose Pose, frame int) Sprite {
	color, ok := characterColors[id]
	if !ok {
		return fallbackSprite(core.ColorGray)
	}
	switch pose {
	case PoseJump:
		return Sprite{Glyph: '▀', Color: color}
	case PoseSlide:
		return Sprite{Glyph: '▄', Color: color}
	case PoseDead:
		return Sprite{Glyph: '×', Color: core.ColorGray}
	default:
		if frame < 0 {
			frame = -frame
		}
		return Sprite{Glyph: runFrames[frame%len(runFrames)], Color: color}
	}
}

// Obstacle returns the art for an obstacle from its chapter pool.
func (GlyphAssets) Obstacle(t ObstacleType, chapter, variant int) Sprite {
	pool, ok := obstacleGlyphs[chapter]
	if !ok || variant < 0 || variant >= len(pool) {
		return fallbackSprite(core.ColorWhite)
	}
	color := obstacleColors[chapter]
	if t == ObstacleForceSlide {
		return Sprite{Glyph: '▒', Color: color}
	}
	return Sprite{Glyph: pool[variant], Color: color}
}

// Platform returns the art for a platform type.
func (GlyphAssets) Platform(t PlatformType) Sprite {
	switch t {
	case PlatformGround:
		return Sprite{Glyph: '▀', Color: core.ColorGray}
	case PlatformLowGround:
		return Sprite{Glyph: '▄', Color: core.ColorOrange}
	default:
		return Sprite{Glyph: '═', Color: core.ColorBrightBlue}
	}
}

// Pit returns the art for a pit.
func (GlyphAssets) Pit() Sprite {
	return Sprite{Glyph: ' ', Color: core.ColorDefault}
}

// Item returns the art for a power-up, tinted with the effect it grants.
func (a GlyphAssets) Item(k ItemKind) Sprite {
	switch k {
	case ItemDash:
		return Sprite{Glyph: '»', Color: a.EffectColor(EffectSpeedBoost)}
	case ItemInvincibility:
		return Sprite{Glyph: '◆', Color: a.EffectColor(EffectBigInvincible)}
	default:
		return fallbackSprite(core.ColorWhite)
	}
}

// Collectible returns the grade point art.
func (GlyphAssets) Collectible() Sprite {
	return Sprite{Glyph: '+', Color: core.ColorBrightYellow}
}

// SpeedLine returns the motion streak art.
func (GlyphAssets) SpeedLine() Sprite {
	return Sprite{Glyph: '─', Color: core.ColorBrightWhite}
}

// EffectColor returns the tint of an active effect.
func (GlyphAssets) EffectColor(k EffectKind) core.Color {
	switch k {
	case EffectHighJump:
		return core.ColorRed
	case EffectBigInvincible:
		return core.ColorCyan
	case EffectSpeedBoost:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// CharacterColor returns the signature colour of a character.
func CharacterColor(id CharacterID) core.Color {
	if c, ok := characterColors[id]; ok {
		return c
	}
	return core.ColorGray
}

func fallbackSprite(c core.Color) Sprite {
	return Sprite{Glyph: '■', Color: c, Fallback: true}
}
