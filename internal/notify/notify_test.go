package notify

import "testing"

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Title != "NanoEdit" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if _, ok := prefs.Events[EventSave]; !ok {
		t.Fatal("missing save template")
	}
	if _, ok := prefs.Events[EventCopy]; !ok {
		t.Fatal("missing copy template")
	}
}

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("NANOEDIT_NOTIFY_TITLE", "Custom Title")
	t.Setenv("NANOEDIT_NOTIFY_SAVE_TEXT", "wrote %s")

	prefs := LoadPreferences()
	if prefs.Title != "Custom Title" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if got := prefs.Events[EventSave].Template; got != "wrote %s" {
		t.Fatalf("save template = %q", got)
	}
	if got := prefs.Events[EventCopy].Template; got != DefaultPreferences().Events[EventCopy].Template {
		t.Fatalf("copy template unexpectedly overridden to %q", got)
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	if n.enabledFor(EventSave) || n.enabledFor(EventCopy) {
		t.Fatal("events should start disabled")
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Fatal("save should be enabled after Enable")
	}
	if n.enabledFor(EventCopy) {
		t.Fatal("copy should remain disabled")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true)
	n.Save("out.png")
	n.Copy("image", nil)
}
