package runner

// RosterSize is the number of runners in a relay team.
const RosterSize = 2

// SessionProgress is the progress kept between chapters for the lifetime
// of the process: the highest unlocked chapter and the chosen team.
type SessionProgress struct {
	MaxUnlocked int
	Roster      []CharacterID

	chapters int
}

// NewSessionProgress starts with only the first chapter unlocked.
func NewSessionProgress(chapters int) *SessionProgress {
	if chapters < 1 {
		chapters = 1
	}
	return &SessionProgress{MaxUnlocked: 1, chapters: chapters}
}

// CanSelect reports whether a chapter is unlocked.
func (s *SessionProgress) CanSelect(chapter int) bool {
	return chapter >= 1 && chapter <= s.MaxUnlocked
}

// AddToRoster appends a character if it is valid, not already chosen and
// the roster has room.
func (s *SessionProgress) AddToRoster(id CharacterID) bool {
	if !id.Valid() || s.RosterFull() || s.InRoster(id) {
		return false
	}
	s.Roster = append(s.Roster, id)
	return true
}

// InRoster reports whether the character is already chosen.
func (s *SessionProgress) InRoster(id CharacterID) bool {
	for _, c := range s.Roster {
		if c == id {
			return true
		}
	}
	return false
}

// RosterFull reports whether the team is complete.
func (s *SessionProgress) RosterFull() bool {
	return len(s.Roster) >= RosterSize
}

// Unlock opens the chapter after completed if completed is the highest
// chapter unlocked so far. Replaying an earlier chapter unlocks nothing.
func (s *SessionProgress) Unlock(completed int) bool {
	if completed != s.MaxUnlocked || s.MaxUnlocked >= s.chapters {
		return false
	}
	s.MaxUnlocked++
	return true
}

// ClearRoster empties the team but keeps unlocked chapters.
func (s *SessionProgress) ClearRoster() {
	s.Roster = nil
}

// Reset returns to a fresh session.
func (s *SessionProgress) Reset() {
	s.MaxUnlocked = 1
	s.Roster = nil
}
