package easylog

import (
	"testing"

	"github.com/RealFaceCode/easyLog/ansi"
)

func TestStandaloneIndex(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		match string
		want  int
	}{
		{"word between spaces", "the cat sat", "cat", 4},
		{"embedded is skipped", "concatenate", "cat", -1},
		{"embedded then standalone", "concatenate cat", "cat", 12},
		{"start of string", "cat sat", "cat", 0},
		{"end of string", "a cat", "cat", 2},
		{"whole string", "cat", "cat", 0},
		{"bounded by comma", "one,cat,two", "cat", 4},
		{"bounded by newline", "a\ncat\nb", "cat", 2},
		{"empty match", "anything", "", -1},
		{"absent", "dog days", "cat", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := standaloneIndex(tt.s, tt.match, 0); got != tt.want {
				t.Fatalf("standaloneIndex(%q, %q) = %d, want %d", tt.s, tt.match, got, tt.want)
			}
		})
	}
}

func TestReplaceStandaloneFirstOnly(t *testing.T) {
	got := replaceStandalone("cat and cat", "cat", "X", false)
	if got != "X and cat" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceStandaloneAll(t *testing.T) {
	got := replaceStandalone("cat, cat and concatenate cat", "cat", "X", true)
	if got != "X, X and concatenate X" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceStandaloneResumesPastReplacement(t *testing.T) {
	// The replacement text itself contains the match; the search must resume
	// after it instead of recursing into it.
	got := replaceStandalone("cat cat", "cat", "<cat>", true)
	if got != "<cat> <cat>" {
		t.Fatalf("got %q", got)
	}
}

func TestPrepareColorizeClosingColors(t *testing.T) {
	// The second range starts inside the first range's span, so it closes
	// with the first range's color instead of the reset sequence.
	msg := "Hello world!"
	prepared := prepareColorize(msg, []Colorize{
		{Target: "Hello world", Color: ansi.Blue},
		{Target: "world", Color: ansi.Red},
	})
	if len(prepared) != 2 {
		t.Fatalf("prepared %d ranges, want 2", len(prepared))
	}
	wantFirst := ansi.Blue.Sequence() + "Hello world" + ansi.ResetSeq
	if prepared[0].replacement != wantFirst {
		t.Fatalf("first replacement %q, want %q", prepared[0].replacement, wantFirst)
	}
	wantSecond := ansi.Red.Sequence() + "world" + ansi.Blue.Sequence()
	if prepared[1].replacement != wantSecond {
		t.Fatalf("second replacement %q, want %q", prepared[1].replacement, wantSecond)
	}
}

func TestPrepareColorizeDisjointRangesReset(t *testing.T) {
	// Ranges that do not overlap both close with the reset sequence.
	prepared := prepareColorize("red then blue", []Colorize{
		{Target: "red", Color: ansi.Red},
		{Target: "blue", Color: ansi.Blue},
	})
	if len(prepared) != 2 {
		t.Fatalf("prepared %d ranges, want 2", len(prepared))
	}
	for i, p := range prepared {
		want := []string{ansi.Red.Sequence(), ansi.Blue.Sequence()}[i] +
			p.target + ansi.ResetSeq
		if p.replacement != want {
			t.Fatalf("range %d replacement %q, want %q", i, p.replacement, want)
		}
	}
}

func TestPrepareColorizeSkipsEmptyInvalid(t *testing.T) {
	prepared := prepareColorize("msg", []Colorize{
		{Target: "", Color: ansi.None},
		{Target: "msg", Color: ansi.Green},
	})
	if len(prepared) != 1 {
		t.Fatalf("prepared %d ranges, want 1", len(prepared))
	}
	if prepared[0].target != "msg" {
		t.Fatalf("kept target %q", prepared[0].target)
	}
}

func TestColorizeMessageMissingTargetIsNoop(t *testing.T) {
	msg := "nothing matches here"
	got := colorizeMessage(msg, []Colorize{{Target: "absent", Color: ansi.Red}})
	if got != msg {
		t.Fatalf("got %q, want unchanged", got)
	}
}

func TestColorizeMessageAppliesInOrder(t *testing.T) {
	got := colorizeMessage("warn level", []Colorize{{Target: "warn", Color: ansi.Yellow}})
	want := ansi.Yellow.Sequence() + "warn" + ansi.ResetSeq + " level"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
