package runner

// State is a screen of the game flow.
type State int

const (
	StateTitle State = iota
	StateCharacterSelect
	StateChapterSelect
	StateConfirmStart
	StateLoading
	StatePlaying
	StatePaused
	StateRelayPrompt
	StateGameOver
	StateGameClear
	StateHiddenCredit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "TITLE_SCREEN"
	case StateCharacterSelect:
		return "CHARACTER_SELECT"
	case StateChapterSelect:
		return "CHAPTER_SELECT"
	case StateConfirmStart:
		return "CONFIRM_START"
	case StateLoading:
		return "LOADING_TRANSITION"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateRelayPrompt:
		return "RELAY_PROMPT"
	case StateGameOver:
		return "GAME_OVER"
	case StateGameClear:
		return "GAME_CLEAR"
	case StateHiddenCredit:
		return "HIDDEN_CREDIT"
	default:
		return "UNKNOWN"
	}
}

// InRun reports whether a chapter is in progress in this state.
func (s State) InRun() bool {
	return s == StatePlaying || s == StatePaused || s == StateRelayPrompt
}
