package term

import "testing"

func TestCellFlagsOps(t *testing.T) {
	f := FlagsNone.With(FlagBold).With(FlagUnderline)

	if !f.Has(FlagBold) || !f.Has(FlagUnderline) {
		t.Errorf("flags %v missing set bits", f)
	}
	if f.Has(FlagBold | FlagItalic) {
		t.Error("Has() true for a partially set mask")
	}
	if !f.HasAny(FlagBold | FlagItalic) {
		t.Error("HasAny() false for a partially set mask")
	}

	f = f.Without(FlagBold)
	if f.Has(FlagBold) {
		t.Error("Without() left the bit set")
	}
	if !f.Has(FlagUnderline) {
		t.Error("Without() cleared an unrelated bit")
	}
}

func TestCellFlagsString(t *testing.T) {
	tests := []struct {
		flags CellFlags
		want  string
	}{
		{FlagsNone, "none"},
		{FlagBold, "bold"},
		{FlagBold | FlagItalic, "bold,italic"},
		{FlagInverse | FlagCrossedOut | FlagOverline, "inverse,crossedOut,overline"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
