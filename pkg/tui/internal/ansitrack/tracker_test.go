// ABOUTME: Tests for the SGR state machine tracker
// ABOUTME: Covers attributes, palette/extended colors, partial and full resets

package ansitrack

import "testing"

func TestTracker_Bold(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[1m")

	if !tr.IsActive() {
		t.Error("expected active after bold")
	}
	if !tr.State().Bold {
		t.Error("expected Bold")
	}
}

func TestTracker_Colors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		seqs   []string
		wantFG string
		wantBG string
	}{
		{name: "basic fg", seqs: []string{"\x1b[31m"}, wantFG: "1"},
		{name: "bright fg", seqs: []string{"\x1b[92m"}, wantFG: "10"},
		{name: "basic bg", seqs: []string{"\x1b[44m"}, wantBG: "4"},
		{name: "bright bg", seqs: []string{"\x1b[107m"}, wantBG: "15"},
		{name: "256 fg", seqs: []string{"\x1b[38;5;208m"}, wantFG: "208"},
		{name: "truecolor bg", seqs: []string{"\x1b[48;2;255;0;16m"}, wantBG: "#ff0010"},
		{name: "fg and bg in one", seqs: []string{"\x1b[38;5;252;48;5;235m"}, wantFG: "252", wantBG: "235"},
		{name: "colon form", seqs: []string{"\x1b[38:5:99m"}, wantFG: "99"},
		{name: "default fg", seqs: []string{"\x1b[31m", "\x1b[39m"}, wantFG: ""},
		{name: "out of range ignored", seqs: []string{"\x1b[38;5;300m"}, wantFG: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tr Tracker
			for _, seq := range tt.seqs {
				tr.Process(seq)
			}
			st := tr.State()
			if st.Foreground != tt.wantFG || st.Background != tt.wantBG {
				t.Errorf("fg=%q bg=%q, want fg=%q bg=%q", st.Foreground, st.Background, tt.wantFG, tt.wantBG)
			}
		})
	}
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	for _, reset := range []string{"\x1b[0m", "\x1b[m"} {
		var tr Tracker
		tr.Process("\x1b[1m")
		tr.Process("\x1b[31m")
		tr.Process(reset)

		if tr.IsActive() {
			t.Errorf("expected inactive after %q", reset)
		}
	}
}

func TestTracker_PartialResets(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[1;2;3;4;9m")
	tr.Process("\x1b[22;23m")

	st := tr.State()
	if st.Bold || st.Dim || st.Italic {
		t.Errorf("22/23 should clear bold, dim, italic: %+v", st)
	}
	if !st.Underline || !st.Strikethrough {
		t.Errorf("underline and strikethrough should survive: %+v", st)
	}
}

func TestTracker_CombinedSequence(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[1;31m")

	if st := tr.State(); !st.Bold || st.Foreground != "1" {
		t.Errorf("expected bold+red, got %+v", st)
	}
}

func TestTracker_IgnoresNonSGR(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[2K")
	tr.Process("\x1b]0;title\x07")

	if tr.IsActive() {
		t.Error("non-SGR sequences must not change state")
	}
}
