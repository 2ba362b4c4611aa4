package core

// Intent represents a normalized, discrete input event handed to the
// simulation. Presenters translate raw keys and timers into intents so the
// game logic never sees a physical key press.
type Intent int

const (
	IntentNone            Intent = iota
	IntentJump                   // Space, Up, W - flap
	IntentRestart                // Space or R after game over
	IntentSpawnTimerFired        // Spawn interval elapsed
	IntentQuit                   // Q, Esc, Ctrl+C - exit the loop between ticks
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentRestart:
		return "Restart"
	case IntentSpawnTimerFired:
		return "SpawnTimerFired"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IntentSet contains all intents collected during one frame.
type IntentSet struct {
	// Intents maps intent kinds to whether they were triggered this frame.
	// Using a map allows checking multiple intents without order dependency.
	Intents map[Intent]bool
}

// NewIntentSet creates an empty intent set.
func NewIntentSet(intents ...Intent) IntentSet {
	s := IntentSet{
		Intents: make(map[Intent]bool),
	}
	for _, i := range intents {
		s.Set(i)
	}
	return s
}

// Set marks an intent as triggered for this frame.
func (s *IntentSet) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if s.Intents == nil {
		s.Intents = make(map[Intent]bool)
	}
	s.Intents[i] = true
}

// Has returns true if the given intent was triggered this frame.
func (s IntentSet) Has(i Intent) bool {
	if s.Intents == nil {
		return false
	}
	return s.Intents[i]
}

// Clear resets all intents for the next frame.
func (s *IntentSet) Clear() {
	for k := range s.Intents {
		delete(s.Intents, k)
	}
}
