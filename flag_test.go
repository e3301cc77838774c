package verbosity

import "testing"

func TestFlag_FallbackWhenUnset(t *testing.T) {
	f := NewFlag(Quiet)

	if got := f.Level(); got != Quiet {
		t.Errorf("unset flag Level() = %v, want fallback Quiet", got)
	}
	if got := f.String(); got != "Quiet" {
		t.Errorf("unset flag String() = %q, want %q", got, "Quiet")
	}
}

func TestFlag_Set(t *testing.T) {
	f := NewFlag(Quiet)

	if err := f.Set("Verbose"); err != nil {
		t.Fatalf("Set(Verbose) failed: %v", err)
	}
	if got := f.Level(); got != Verbose {
		t.Errorf("Level() = %v, want Verbose", got)
	}
}

func TestFlag_SetInvalid(t *testing.T) {
	f := NewFlag(Terse)

	if err := f.Set("loudest"); err == nil {
		t.Fatal("Set accepted an unknown token")
	}
	if got := f.Level(); got != Terse {
		t.Errorf("failed Set changed Level() to %v, want fallback Terse", got)
	}
}

func TestFlag_Install(t *testing.T) {
	reset()

	f := NewFlag(Quiet)
	if err := f.Set("Terse"); err != nil {
		t.Fatalf("Set(Terse) failed: %v", err)
	}
	if !f.Install() {
		t.Fatal("first Install through the flag should win")
	}
	if got := Current(); got != Terse {
		t.Errorf("Current() = %v, want Terse", got)
	}
}

func TestFlag_Type(t *testing.T) {
	if got := NewFlag(Quiet).Type(); got != "level" {
		t.Errorf("Type() = %q, want %q", got, "level")
	}
}
