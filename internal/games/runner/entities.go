package runner

import "github.com/vovakirdan/aplus-runner/internal/core"

// Kind tags the variant carried by an Entity.
type Kind int

const (
	KindObstacle Kind = iota
	KindPlatform
	KindPit
	KindItem
	KindCollectible
	KindSpeedLine
)

// String returns the entity kind name.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindPlatform:
		return "platform"
	case KindPit:
		return "pit"
	case KindItem:
		return "item"
	case KindCollectible:
		return "collectible"
	case KindSpeedLine:
		return "speed_line"
	default:
		return "unknown"
	}
}

// ObstacleType is the shape class of an obstacle.
type ObstacleType int

const (
	ObstacleForceJump ObstacleType = iota
	ObstacleTallJump
	ObstacleForceSlide
)

// obstacleTypes lists every obstacle type for uniform picks.
var obstacleTypes = []ObstacleType{ObstacleForceJump, ObstacleTallJump, ObstacleForceSlide}

// jumpObstacleTypes are the types that can sit on top of a platform.
var jumpObstacleTypes = []ObstacleType{ObstacleForceJump, ObstacleTallJump}

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleForceJump:
		return "force_jump"
	case ObstacleTallJump:
		return "tall_jump"
	case ObstacleForceSlide:
		return "force_slide"
	default:
		return "unknown"
	}
}

// Obstacle dimensions. Slide obstacles hang with their bottom edge
// obstacleSlideClearance above the base they are anchored to.
const (
	obstacleWidth          = 30
	forceJumpHeight        = 60
	tallJumpHeight         = 110
	forceSlideHeight       = 230
	obstacleSlideClearance = 70
)

// PlatformType is the placement class of a platform.
type PlatformType int

const (
	PlatformFloating PlatformType = iota
	PlatformLowGround
	PlatformGround
)

// String returns the platform type name.
func (t PlatformType) String() string {
	switch t {
	case PlatformFloating:
		return "floating"
	case PlatformLowGround:
		return "low_ground"
	case PlatformGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Entity is a scrolling world object. Kind selects which payload fields are
// meaningful; every variant shares the box, scrolling and off-screen test.
type Entity struct {
	Kind Kind
	Rect core.Rect

	Obstacle ObstacleType // KindObstacle
	Chapter  int          // KindObstacle: art pool
	Variant  int          // KindObstacle: art variant within the pool
	Platform PlatformType // KindPlatform
	Item     ItemKind     // KindItem
}

// NewObstacle builds an obstacle whose base sits at baseY. Jump obstacles
// stand on the base; slide obstacles hang above it.
func NewObstacle(t ObstacleType, chapter, variant, x, baseY int) Entity {
	var r core.Rect
	switch t {
	case ObstacleTallJump:
		r = core.NewRect(x, baseY-tallJumpHeight, obstacleWidth, tallJumpHeight)
	case ObstacleForceSlide:
		bottom := baseY - obstacleSlideClearance
		r = core.NewRect(x, bottom-forceSlideHeight, obstacleWidth, forceSlideHeight)
	default:
		t = ObstacleForceJump
		r = core.NewRect(x, baseY-forceJumpHeight, obstacleWidth, forceJumpHeight)
	}
	return Entity{Kind: KindObstacle, Rect: r, Obstacle: t, Chapter: chapter, Variant: variant}
}

// NewPlatform builds a platform with its top at top.
func NewPlatform(t PlatformType, x, top, width, height int) Entity {
	return Entity{Kind: KindPlatform, Rect: core.NewRect(x, top, width, height), Platform: t}
}

// NewPit builds a pit spanning the ground band below groundY.
func NewPit(x, groundY, width, depth int) Entity {
	return Entity{Kind: KindPit, Rect: core.NewRect(x, groundY, width, depth)}
}

// NewItem builds a power-up whose left edge is at x and centre at centerY.
func NewItem(k ItemKind, x, centerY, size int) Entity {
	return Entity{Kind: KindItem, Rect: core.NewRect(x, centerY-size/2, size, size), Item: k}
}

// Collectible dimensions.
const (
	collectibleWidth  = 20
	collectibleHeight = 25
)

// NewCollectible builds a grade point centred vertically at centerY.
func NewCollectible(x, centerY int) Entity {
	return Entity{
		Kind: KindCollectible,
		Rect: core.NewRect(x, centerY-collectibleHeight/2, collectibleWidth, collectibleHeight),
	}
}

// NewSpeedLine builds a cosmetic motion streak.
func NewSpeedLine(x, y, width int) Entity {
	return Entity{Kind: KindSpeedLine, Rect: core.NewRect(x, y, width, 2)}
}

// Scroll moves the entity left by the world speed. Speed lines streak past
// at factor times the world speed.
func (e *Entity) Scroll(speed, speedLineFactor int) {
	if e.Kind == KindSpeedLine {
		speed *= speedLineFactor
	}
	e.Rect.X -= speed
}

// OffScreen reports whether the entity has fully left the screen on the left.
func (e Entity) OffScreen() bool {
	return e.Rect.Right() < 0
}

// IsGround reports whether the entity is a ground platform segment.
func (e Entity) IsGround() bool {
	return e.Kind == KindPlatform && e.Platform == PlatformGround
}
