package session

import "github.com/abhisek/composition/internal/problemgen"

// Observer receives session outputs in event order. Methods are called
// while the controller is locked and must not call back into it.
type Observer interface {
	MinPercent(percent int)
	TimeLeft(text string)
	Question(q problemgen.Question)
	Progress(p Progress)
	Result(r Result)
}

// ObserverFuncs adapts optional callbacks to an Observer. Nil fields are
// skipped.
type ObserverFuncs struct {
	OnMinPercent func(int)
	OnTimeLeft   func(string)
	OnQuestion   func(problemgen.Question)
	OnProgress   func(Progress)
	OnResult     func(Result)
}

var _ Observer = ObserverFuncs{}

func (f ObserverFuncs) MinPercent(percent int) {
	if f.OnMinPercent != nil {
		f.OnMinPercent(percent)
	}
}

func (f ObserverFuncs) TimeLeft(text string) {
	if f.OnTimeLeft != nil {
		f.OnTimeLeft(text)
	}
}

func (f ObserverFuncs) Question(q problemgen.Question) {
	if f.OnQuestion != nil {
		f.OnQuestion(q)
	}
}

func (f ObserverFuncs) Progress(p Progress) {
	if f.OnProgress != nil {
		f.OnProgress(p)
	}
}

func (f ObserverFuncs) Result(r Result) {
	if f.OnResult != nil {
		f.OnResult(r)
	}
}

// NopObserver discards every output.
type NopObserver struct{}

func (NopObserver) MinPercent(int) {}
func (NopObserver) TimeLeft(string) {}
func (NopObserver) Question(problemgen.Question) {}
func (NopObserver) Progress(Progress) {}
func (NopObserver) Result(Result) {}
