package button

import (
	"testing"
)

func TestTrigger(t *testing.T) {
	pressed := 0
	b := NewButton(
		WithLabel("next"),
		WithOnPress(func() { pressed++ }),
	)

	b.Trigger()
	b.Trigger()
	if pressed != 2 {
		t.Fatalf("pressed = %d, want 2", pressed)
	}
}

func TestTriggerHidden(t *testing.T) {
	pressed := 0
	b := NewButton(
		WithVisible(false),
		WithOnPress(func() { pressed++ }),
	)

	b.Trigger()
	if pressed != 0 {
		t.Fatal("hidden button must not fire its handler")
	}

	b.SetVisible(true)
	b.Trigger()
	if pressed != 1 {
		t.Fatalf("pressed = %d after show, want 1", pressed)
	}
}

func TestTriggerNilHandler(t *testing.T) {
	b := NewButton(WithLabel("bare"))
	b.Trigger() // must not panic

	pressed := false
	b.SetOnPress(func() { pressed = true })
	b.Trigger()
	if !pressed {
		t.Fatal("late-registered handler must fire")
	}
}

func TestDefaults(t *testing.T) {
	b := NewButton()
	if !b.Visible() {
		t.Fatal("buttons must be visible by default")
	}
	if b.Label() != "" {
		t.Fatalf("default label = %q, want empty", b.Label())
	}
}
