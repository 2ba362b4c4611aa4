package core

import "testing"

func TestIntentSet(t *testing.T) {
	s := NewIntentSet()
	if len(s.Intents) != 0 {
		t.Error("new set should be empty")
	}

	s.Set(IntentJump)
	s.Set(IntentNone)
	if !s.Has(IntentJump) {
		t.Error("Jump should be set")
	}
	if s.Has(IntentNone) {
		t.Error("None should never be stored")
	}
	if s.Has(IntentRestart) {
		t.Error("Restart should not be set")
	}

	s.Clear()
	if len(s.Intents) != 0 {
		t.Error("Clear should remove all intents")
	}
}

func TestIntentSetZeroValue(t *testing.T) {
	var s IntentSet
	if s.Has(IntentQuit) {
		t.Error("zero value should report nothing")
	}
	s.Set(IntentQuit)
	if !s.Has(IntentQuit) {
		t.Error("Set on zero value should allocate")
	}
}

func TestIntentString(t *testing.T) {
	tests := map[Intent]string{
		IntentNone:            "None",
		IntentJump:            "Jump",
		IntentRestart:         "Restart",
		IntentSpawnTimerFired: "SpawnTimerFired",
		IntentQuit:            "Quit",
		Intent(99):            "Unknown",
	}
	for in, want := range tests {
		if got := in.String(); got != want {
			t.Errorf("Intent(%d).String() = %q, expected %q", int(in), got, want)
		}
	}
}
