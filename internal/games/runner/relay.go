package runner

// Relay holds the two runners of a chapter. The first runner is active until
// it dies; the second then takes over if the relay is accepted.
type Relay struct {
	runners      [2]*Player
	reviveOffset int
}

// newRelay creates both runners from the roster. The second runner starts
// dead and parked off-screen at parkX.
func newRelay(roster []CharacterID, ph *physics, parkX, reviveOffset int) *Relay {
	first, second := CharacterA, CharacterB
	if len(roster) > 0 {
		first, second = roster[0], roster[0]
	}
	if len(roster) > 1 {
		second = roster[1]
	}

	r := &Relay{reviveOffset: reviveOffset}
	r.runners[0] = newPlayer(first, ph)
	r.runners[1] = newPlayer(second, ph)
	r.runners[1].Park(parkX)
	return r
}

// Runners returns both runners, first runner first.
func (r *Relay) Runners() [2]*Player {
	return r.runners
}

// First returns the runner that starts the chapter.
func (r *Relay) First() *Player {
	return r.runners[0]
}

// Second returns the relay runner.
func (r *Relay) Second() *Player {
	return r.runners[1]
}

// ActiveIndex returns 0 while the first runner is alive, 1 otherwise.
func (r *Relay) ActiveIndex() int {
	if !r.runners[0].Dead {
		return 0
	}
	return 1
}

// Active returns the runner input and collisions apply to.
func (r *Relay) Active() *Player {
	return r.runners[r.ActiveIndex()]
}

// Handoff revives the second runner behind the fallen first runner.
func (r *Relay) Handoff() {
	r.runners[1].Revive(r.runners[0].Rect.X - r.reviveOffset)
}
