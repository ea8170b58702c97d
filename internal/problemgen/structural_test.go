package problemgen

import "testing"

func validQuestion() *Question {
	return &Question{
		Sum:           9,
		VisibleNumber: 4,
		Options:       []int{3, 5, 6, 7, 8, 2},
		RightAnswer:   5,
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validQuestion(), GenerateInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = q.Options[:4]
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for short option list")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_CustomOptionCount(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = []int{5, 6, 7, 8}
	if err := v.Validate(q, GenerateInput{OptionCount: 4}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_DuplicateOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = []int{3, 5, 6, 7, 3, 2}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for duplicate option")
	}
}

func TestStructural_NegativeOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = []int{-1, 5, 6, 7, 8, 2}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for negative option")
	}
}

func TestStructural_MissingRightAnswer(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = []int{3, 1, 6, 7, 8, 2}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error when right answer is not offered")
	}
}
