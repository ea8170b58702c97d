package plain

import (
	"fmt"
	"strings"

	"github.com/abhisek/composition/internal/problemgen"
	"github.com/abhisek/composition/internal/session"
)

// printer renders session outputs as lines of text.
type printer struct {
	out        *syncWriter
	minPercent int
	results    chan session.Result
}

var _ session.Observer = (*printer)(nil)

func (p *printer) MinPercent(percent int) {
	p.minPercent = percent
}

func (p *printer) TimeLeft(text string) {
	p.out.printf("time left %s\n", text)
}

func (p *printer) Question(q problemgen.Question) {
	p.out.printf("%s\n", FormatQuestion(q))
}

func (p *printer) Progress(pr session.Progress) {
	p.out.printf("%s, %d%% (min %d%%)\n", pr.Text(), pr.Percent, p.minPercent)
}

func (p *printer) Result(r session.Result) {
	p.out.printf("%s", FormatResult(r))
	p.results <- r
}

// FormatQuestion renders "sum = visible + ?" followed by numbered options.
func FormatQuestion(q problemgen.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d = %d + ?\n", q.Sum, q.VisibleNumber)
	for i, opt := range q.Options {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%d) %d", i+1, opt)
	}
	return b.String()
}

// FormatResult renders the end-of-session summary.
func FormatResult(r session.Result) string {
	var b strings.Builder
	b.WriteString("Time is up!\n")
	if r.Winner {
		b.WriteString("You won!\n")
	} else {
		b.WriteString("You lost.\n")
	}
	fmt.Fprintf(&b, "Right answers: %d of %d (%d%%)\n", r.CountOfRightAnswers, r.CountOfQuestions, r.Percent())
	fmt.Fprintf(&b, "Required: %d right answers and %d%%\n",
		r.Settings.MinCountRightAnswers, r.Settings.MinPercentOfRightAnswers)
	return b.String()
}
