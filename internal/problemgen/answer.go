package problemgen

// CheckAnswer reports whether value is the right answer to the question.
func CheckAnswer(value int, question *Question) bool {
	if question == nil {
		return false
	}
	return value == question.RightAnswer
}

// OptionIndex returns the position of value in the question's options,
// or -1 if it is not offered.
func OptionIndex(question *Question, value int) int {
	if question == nil {
		return -1
	}
	for i, opt := range question.Options {
		if opt == value {
			return i
		}
	}
	return -1
}
