package key

import "testing"

func TestModifierOps(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)

	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Errorf("modifier %v missing set bits", m)
	}
	if m.Has(ModAlt) {
		t.Errorf("modifier %v has unset bit", m)
	}

	stripped := m.Without(ModShift)
	if stripped.Has(ModShift) {
		t.Error("Without() left the bit set")
	}
	if !stripped.Has(ModCtrl) {
		t.Error("Without() cleared an unrelated bit")
	}

	if !ModNone.IsEmpty() || ModNone.Any() {
		t.Error("ModNone is not empty")
	}
	if m.IsEmpty() || !m.Any() {
		t.Errorf("modifier %v reports empty", m)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, "None"},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "Ctrl+Alt+Shift+Meta"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyIsArrowKey(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrowKey() {
			t.Errorf("%v.IsArrowKey() = false", k)
		}
	}
	for _, k := range []Key{KeyNone, KeyInsert, KeyHome, KeyPageDown, KeyRune} {
		if k.IsArrowKey() {
			t.Errorf("%v.IsArrowKey() = true", k)
		}
	}
}

func TestEvent(t *testing.T) {
	r := NewRuneEvent('v', ModCtrl)
	if !r.IsRune() {
		t.Error("rune event does not report IsRune")
	}
	if r.String() != "Ctrl+v" {
		t.Errorf("String() = %q, want \"Ctrl+v\"", r.String())
	}

	k := NewKeyEvent(KeyPageUp, ModNone)
	if k.IsRune() {
		t.Error("key event reports IsRune")
	}
	if k.String() != "PageUp" {
		t.Errorf("String() = %q, want \"PageUp\"", k.String())
	}

	plain := NewRuneEvent('x', ModNone)
	if plain.String() != "x" {
		t.Errorf("String() = %q, want \"x\"", plain.String())
	}
}
