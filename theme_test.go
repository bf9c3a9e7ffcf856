package spoke

import (
	"strings"
	"testing"
)

func TestLoadThemeFull(t *testing.T) {
	cfg, err := LoadTheme([]byte(`
background: ui/wedge.png
normal_size: 40
focus_size: 56
move_time: 0.2
focus_time: 0.15
action_visible: false
`))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	if cfg.BackgroundPath != "ui/wedge.png" {
		t.Errorf("BackgroundPath = %q, want ui/wedge.png", cfg.BackgroundPath)
	}
	assertNear(t, "NormalSize", cfg.NormalSize, 40)
	assertNear(t, "FocusSize", cfg.FocusSize, 56)
	assertNear(t, "MoveTime", cfg.MoveTime, 0.2)
	assertNear(t, "FocusTime", cfg.FocusTime, 0.15)
	if cfg.ActionVisible {
		t.Error("ActionVisible = true, want false")
	}
}

func TestLoadThemeOmittedFieldsKeepDefaults(t *testing.T) {
	cfg, err := LoadTheme([]byte(`background: ui/wedge.png`))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	assertNear(t, "NormalSize", cfg.NormalSize, DefaultNormalSize)
	assertNear(t, "FocusSize", cfg.FocusSize, DefaultFocusSize)
	assertNear(t, "MoveTime", cfg.MoveTime, DefaultMoveTime)
	assertNear(t, "FocusTime", cfg.FocusTime, DefaultFocusTime)
	if !cfg.ActionVisible {
		t.Error("ActionVisible should default to true")
	}
}

func TestLoadThemeEmptyDocument(t *testing.T) {
	cfg, err := LoadTheme(nil)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	assertNear(t, "NormalSize", cfg.NormalSize, DefaultNormalSize)
}

func TestLoadThemeBadYAML(t *testing.T) {
	_, err := LoadTheme([]byte("normal_size: [not a number"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "spoke:") {
		t.Errorf("error %q should carry the package prefix", err)
	}
}

func TestLoadThemeRejectsNonPositiveSizes(t *testing.T) {
	if _, err := LoadTheme([]byte("normal_size: 0")); err == nil {
		t.Error("expected error for zero normal size")
	}
	if _, err := LoadTheme([]byte("focus_size: -3")); err == nil {
		t.Error("expected error for negative focus size")
	}
}

func TestLoadThemeRejectsNegativeDurations(t *testing.T) {
	if _, err := LoadTheme([]byte("move_time: -0.1")); err == nil {
		t.Error("expected error for negative move time")
	}
}
