package plain

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/composition/internal/clock"
	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/problemgen"
	"github.com/abhisek/composition/internal/session"
)

// fixedGenerator always serves 9 = 4 + ? with the right answer at option 2.
type fixedGenerator struct{}

func (fixedGenerator) Generate(problemgen.GenerateInput) (*problemgen.Question, error) {
	return &problemgen.Question{
		Sum:           9,
		VisibleNumber: 4,
		Options:       []int{3, 5, 6, 7, 8, 2},
		RightAnswer:   5,
	}, nil
}

// safeBuffer is a bytes.Buffer guarded for concurrent writers.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runOutcome struct {
	res session.Result
	ok  bool
	err error
}

func startRun(t *testing.T, in io.Reader, clk clock.Clock, out io.Writer) <-chan runOutcome {
	t.Helper()
	done := make(chan runOutcome, 1)
	go func() {
		res, ok, err := Run(context.Background(), Options{
			Level:     levels.LevelTest,
			In:        in,
			Out:       out,
			Clock:     clk,
			Generator: fixedGenerator{},
		})
		done <- runOutcome{res, ok, err}
	}()
	return done
}

func wait(t *testing.T, done <-chan runOutcome) runOutcome {
	t.Helper()
	select {
	case o := <-done:
		return o
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return runOutcome{}
	}
}

func TestRun_PlaysUntilTimeIsUp(t *testing.T) {
	clk := clock.NewManual()
	out := &safeBuffer{}
	inR, inW := io.Pipe()
	defer inW.Close()

	done := startRun(t, inR, clk, out)
	require.Eventually(t, func() bool { return clk.Active() == 1 }, 2*time.Second, time.Millisecond)

	_, err := io.WriteString(inW, "2\n=5\n1\n2\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Right answers: 3 (min 3), 75% (min 50%)")
	}, 2*time.Second, time.Millisecond)

	clk.Advance(8 * time.Second)
	o := wait(t, done)

	require.NoError(t, o.err)
	require.True(t, o.ok)
	assert.True(t, o.res.Winner)
	assert.Equal(t, 3, o.res.CountOfRightAnswers)
	assert.Equal(t, 4, o.res.CountOfQuestions)

	text := out.String()
	assert.Contains(t, text, "Level Test: reach 3 right answers and 50% within 00:08.")
	assert.Contains(t, text, "time left 00:08")
	assert.Contains(t, text, "time left 00:00")
	assert.Contains(t, text, "9 = 4 + ?\n1) 3  2) 5  3) 6  4) 7  5) 8  6) 2")
	assert.Contains(t, text, "You won!")
}

func TestRun_Quit(t *testing.T) {
	clk := clock.NewManual()
	out := &safeBuffer{}

	o := wait(t, startRun(t, strings.NewReader("2\nq\n"), clk, out))

	require.NoError(t, o.err)
	assert.False(t, o.ok)
	assert.Contains(t, out.String(), "Session stopped.")
	assert.NotContains(t, out.String(), "Time is up!")
	assert.Equal(t, 0, clk.Active())
}

func TestRun_InputClosed(t *testing.T) {
	clk := clock.NewManual()
	o := wait(t, startRun(t, strings.NewReader(""), clk, io.Discard))

	require.NoError(t, o.err)
	assert.False(t, o.ok)
	assert.Equal(t, 0, clk.Active())
}

func TestRun_InvalidInput(t *testing.T) {
	out := &safeBuffer{}
	o := wait(t, startRun(t, strings.NewReader("7\nfoo\n=x\nq\n"), clock.NewManual(), out))

	require.NoError(t, o.err)
	assert.Equal(t, 2, strings.Count(out.String(), "enter an option 1-6, =value or q"))
	assert.Contains(t, out.String(), `not a number: "x"`)
}

func TestRun_UnknownLevel(t *testing.T) {
	_, _, err := Run(context.Background(), Options{
		Level: levels.Level("impossible"),
		In:    strings.NewReader(""),
		Out:   io.Discard,
		Clock: clock.NewManual(),
	})
	var cfgErr *levels.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRun_ContextCanceled(t *testing.T) {
	clk := clock.NewManual()
	inR, inW := io.Pipe()
	defer inW.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, _, err := Run(ctx, Options{Level: levels.LevelTest, In: inR, Out: io.Discard, Clock: clk})
		done <- err
	}()
	require.Eventually(t, func() bool { return clk.Active() == 1 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 0, clk.Active())
}

func TestFormatResult(t *testing.T) {
	r := session.Result{
		Winner:              false,
		CountOfRightAnswers: 1,
		CountOfQuestions:    3,
		Settings:            levels.MustResolve(levels.LevelEasy),
	}
	want := "Time is up!\nYou lost.\nRight answers: 1 of 3 (33%)\nRequired: 10 right answers and 70%\n"
	assert.Equal(t, want, FormatResult(r))
}
