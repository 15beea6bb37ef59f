package key

import (
	"testing"
)

func TestIdentityString(t *testing.T) {
	tests := []struct {
		id   Identity
		want string
	}{
		{Enter, "Enter"},
		{Spacebar, "Space"},
		{ArrowUp, "ArrowUp"},
		{Identity("a"), "a"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("Identity.String() = %q, want %q for %q", got, tt.want, string(tt.id))
		}
	}
}

func TestIdentityIsModifier(t *testing.T) {
	tests := []struct {
		id   Identity
		want bool
	}{
		{Shift, true},
		{Control, true},
		{Meta, true},
		{Alt, true},
		{Enter, false},
		{Spacebar, false},
		{Identity("a"), false},
	}

	for _, tt := range tests {
		if got := tt.id.IsModifier(); got != tt.want {
			t.Errorf("Identity.IsModifier() = %v, want %v for %q", got, tt.want, string(tt.id))
		}
	}
}

func TestIdentityIsArrow(t *testing.T) {
	tests := []struct {
		id   Identity
		want bool
	}{
		{ArrowUp, true},
		{ArrowDown, true},
		{ArrowLeft, true},
		{ArrowRight, true},
		{Enter, false},
		{Identity("Arrow"), false},
	}

	for _, tt := range tests {
		if got := tt.id.IsArrow(); got != tt.want {
			t.Errorf("Identity.IsArrow() = %v, want %v for %q", got, tt.want, string(tt.id))
		}
	}
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(Enter)
	if e.Key != Enter {
		t.Errorf("NewEvent key = %q, want Enter", string(e.Key))
	}
	if e.Timestamp.IsZero() {
		t.Error("NewEvent timestamp should be set")
	}
}

func TestEventIsPrintable(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewEvent(Identity("a")), true},
		{NewEvent(Spacebar), true},
		{NewEvent(Enter), false},
		{NewEvent(Identity("")), false},
		{NewEvent(Identity("\n")), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsPrintable(); got != tt.want {
			t.Errorf("Event.IsPrintable() = %v, want %v for %q", got, tt.want, string(tt.event.Key))
		}
	}
}
