// Package plain runs a session as a line-oriented dialogue on plain
// readers and writers, for terminals without full-screen support.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/composition/internal/clock"
	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/logging"
	"github.com/abhisek/composition/internal/problemgen"
	"github.com/abhisek/composition/internal/session"
)

// Options configures a plain-mode run.
type Options struct {
	Level     levels.Level
	In        io.Reader
	Out       io.Writer
	Clock     clock.Clock
	Generator problemgen.Generator
	Logger    *slog.Logger
}

// Run plays one session. It returns the result and true when time ran out,
// or false when the player quit or input ended before a result.
func Run(ctx context.Context, opts Options) (session.Result, bool, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	out := &syncWriter{w: opts.Out}
	p := &printer{out: out, results: make(chan session.Result, 1)}

	ctrl := session.New(session.Options{
		Generator: opts.Generator,
		Clock:     opts.Clock,
		Observer:  p,
		Logger:    opts.Logger,
	})

	settings, err := levels.Resolve(opts.Level)
	if err != nil {
		return session.Result{}, false, err
	}
	out.printf("Level %s: reach %d right answers and %d%% within %s. Type q to quit.\n",
		opts.Level.DisplayName(),
		settings.MinCountRightAnswers,
		settings.MinPercentOfRightAnswers,
		session.FormatTime(settings.GameTime()),
	)

	if err := ctrl.Start(opts.Level); err != nil {
		return session.Result{}, false, err
	}
	defer ctrl.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reads from a terminal cannot be interrupted, so the reader is not
	// joined; it exits on the next line or at end of input.
	lines := make(chan string)
	go readLines(ctx, opts.In, lines)

	var (
		res      session.Result
		finished bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case r := <-p.results:
				res, finished = r, true
				return nil
			case line, ok := <-lines:
				if !ok {
					opts.Logger.Debug("input closed")
					return nil
				}
				if quit := handleLine(ctrl, out, line); quit {
					return nil
				}
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		ctrl.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return session.Result{}, false, err
	}
	return res, finished, nil
}

// handleLine applies one line of input. It reports whether the player quit.
func handleLine(ctrl *session.Controller, out *syncWriter, line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.EqualFold(line, "q"), strings.EqualFold(line, "quit"):
		ctrl.Stop()
		out.printf("Session stopped.\n")
		return true
	case strings.HasPrefix(line, "="):
		v, err := strconv.Atoi(strings.TrimSpace(line[1:]))
		if err != nil {
			out.printf("not a number: %q\n", line[1:])
			return false
		}
		ctrl.ChooseAnswer(v)
		return false
	}

	n, err := strconv.Atoi(line)
	q, ok := ctrl.Question()
	if err != nil || !ok || n < 1 || n > len(q.Options) {
		out.printf("enter an option 1-%d, =value or q\n", len(q.Options))
		return false
	}
	ctrl.ChooseAnswer(q.Options[n-1])
	return false
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) {
	defer close(lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
}

// syncWriter serializes writes from the clock and input goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}
