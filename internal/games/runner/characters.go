package runner

// CharacterID identifies one of the six selectable runners.
type CharacterID string

// The selectable characters, in menu order.
const (
	CharacterA CharacterID = "A"
	CharacterB CharacterID = "B"
	CharacterC CharacterID = "C"
	CharacterD CharacterID = "D"
	CharacterE CharacterID = "E"
	CharacterF CharacterID = "F"
)

// Characters lists every character in menu order.
var Characters = []CharacterID{CharacterA, CharacterB, CharacterC, CharacterD, CharacterE, CharacterF}

// Skill is the once-per-chapter ability bound to a character.
type Skill int

const (
	SkillHighJump Skill = iota
	SkillBigInvincible
	SkillSpeedBoost
)

// String returns the display name of the skill.
func (s Skill) String() string {
	switch s {
	case SkillHighJump:
		return "High Jump"
	case SkillBigInvincible:
		return "Giant"
	case SkillSpeedBoost:
		return "Dash"
	default:
		return "Unknown"
	}
}

// Valid reports whether id names a selectable character.
func (id CharacterID) Valid() bool {
	for _, c := range Characters {
		if c == id {
			return true
		}
	}
	return false
}

// Skill returns the character's skill: A and D jump high, B and E grow
// invincible, C and F dash.
func (id CharacterID) Skill() Skill {
	switch id {
	case CharacterA, CharacterD:
		return SkillHighJump
	case CharacterB, CharacterE:
		return SkillBigInvincible
	default:
		return SkillSpeedBoost
	}
}

// Index returns the menu position of the character, or -1.
func (id CharacterID) Index() int {
	for i, c := range Characters {
		if c == id {
			return i
		}
	}
	return -1
}
