package problemgen

import "testing"

func TestCheckAnswer(t *testing.T) {
	q := validQuestion()

	tests := []struct {
		input int
		want  bool
	}{
		{5, true},
		{4, false},
		{9, false},
		{-5, false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%d) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if CheckAnswer(5, nil) {
		t.Error("CheckAnswer with nil question should be false")
	}
}

func TestOptionIndex(t *testing.T) {
	q := validQuestion()
	if got := OptionIndex(q, 5); got != 1 {
		t.Errorf("OptionIndex(5) = %d, want 1", got)
	}
	if got := OptionIndex(q, 2); got != 5 {
		t.Errorf("OptionIndex(2) = %d, want 5", got)
	}
	if got := OptionIndex(q, 42); got != -1 {
		t.Errorf("OptionIndex(42) = %d, want -1", got)
	}
	if got := OptionIndex(nil, 5); got != -1 {
		t.Errorf("OptionIndex(nil) = %d, want -1", got)
	}
}
