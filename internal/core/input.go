package core

// Action is a semantic input event, abstracted from physical keys and mouse
// buttons. The meaning of most actions depends on the current game state:
// ActionSkill is "space" (skill while playing, confirm in menus) and
// ActionUp doubles as jump.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W: jump / highlight previous
	ActionDown           // Down arrow, S: slide / highlight next
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionSkill          // Space
	ActionConfirm        // Enter
	ActionPause          // P
	ActionEscape         // Esc
	ActionClick          // Primary mouse button, carries logical coordinates
	ActionQuit           // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSkill:
		return "Skill"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionEscape:
		return "Escape"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MaxEventsPerFrame bounds the event queue of a single frame.
const MaxEventsPerFrame = 32

// Event is one discrete input event. X and Y are only meaningful for
// ActionClick and are expressed in logical game pixels.
type Event struct {
	Action Action
	X, Y   int
}

// IsKey reports whether the event came from the keyboard.
func (e Event) IsKey() bool {
	return e.Action != ActionNone && e.Action != ActionClick && e.Action != ActionQuit
}

// InputFrame is the input for one simulation tick: the ordered key/click
// events that arrived since the previous tick and the continuous "down held"
// state used for sliding.
type InputFrame struct {
	Events   []Event
	DownHeld bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 8)}
}

// Push appends an event, dropping it if the frame queue is full.
func (f *InputFrame) Push(ev Event) bool {
	if ev.Action == ActionNone || len(f.Events) >= MaxEventsPerFrame {
		return false
	}
	f.Events = append(f.Events, ev)
	return true
}

// Set queues a key action without coordinates.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// Click queues a mouse click at logical coordinates.
func (f *InputFrame) Click(x, y int) {
	f.Push(Event{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Clear drops the queued events. DownHeld is owned by the platform and is
// recomputed before every tick, so it is left alone.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
