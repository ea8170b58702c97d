// Package session implements the timed composition quiz state machine.
//
// A Controller moves through NotStarted, Running and Finished. Answer
// submissions and clock callbacks are serialized by a mutex; an answer that
// arrives after expiry is dropped.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/composition/internal/clock"
	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/logging"
	"github.com/abhisek/composition/internal/problemgen"
)

const (
	// DefaultInterval is the clock tick interval.
	DefaultInterval = time.Second

	// maxGenerateAttempts bounds regeneration after a retryable validation failure.
	maxGenerateAttempts = 3
)

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	Generator   problemgen.Generator
	Clock       clock.Clock
	Observer    Observer
	Logger      *slog.Logger
	Interval    time.Duration
	OptionCount int
	Resolve     func(levels.Level) (levels.Settings, error)
}

// Controller runs a single session. It is safe for concurrent use, but a
// Controller cannot be restarted once Finished; create a new one instead.
type Controller struct {
	gen         problemgen.Generator
	clock       clock.Clock
	observer    Observer
	logger      *slog.Logger
	interval    time.Duration
	optionCount int
	resolve     func(levels.Level) (levels.Settings, error)

	mu        sync.Mutex
	phase     Phase
	id        string
	level     levels.Level
	settings  levels.Settings
	question  *problemgen.Question
	right     int
	total     int
	remaining time.Duration
	lastTime  string
	timer     clock.Timer
	result    *Result
}

// New creates a controller in PhaseNotStarted.
func New(opts Options) *Controller {
	c := &Controller{
		gen:         opts.Generator,
		clock:       opts.Clock,
		observer:    opts.Observer,
		logger:      opts.Logger,
		interval:    opts.Interval,
		optionCount: opts.OptionCount,
		resolve:     opts.Resolve,
		id:          uuid.New().String(),
	}
	if c.gen == nil {
		c.gen = problemgen.New(problemgen.DefaultConfig())
	}
	if c.clock == nil {
		c.clock = clock.NewTicker()
	}
	if c.observer == nil {
		c.observer = NopObserver{}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.optionCount <= 0 {
		c.optionCount = problemgen.DefaultOptionCount
	}
	if c.resolve == nil {
		c.resolve = levels.Resolve
	}
	c.logger = c.logger.With("session", c.id)
	return c
}

// Start resolves the level's settings, publishes the initial state and
// starts the countdown. It fails with *InvalidStateError unless the session
// has not started, and with *levels.ConfigurationError for an unknown level.
func (c *Controller) Start(level levels.Level) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseNotStarted {
		return &InvalidStateError{Op: "start", Phase: c.phase}
	}

	settings, err := c.resolve(level)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("level %s: %w", level, err)
	}

	q, err := c.generate(settings)
	if err != nil {
		return fmt.Errorf("generate first question: %w", err)
	}

	c.level = level
	c.settings = settings
	c.question = q
	c.right, c.total = 0, 0
	c.remaining = settings.GameTime()
	c.phase = PhaseRunning

	c.logger.Info("session started",
		"level", level,
		"max_sum", settings.MaxSumValue,
		"game_time", settings.GameTime(),
	)

	c.observer.MinPercent(settings.MinPercentOfRightAnswers)
	c.emitTimeLocked()
	c.observer.Question(*q)
	c.observer.Progress(NewProgress(0, 0, settings))

	c.timer = c.clock.Start(c.interval, c.remaining, c.tick, c.expire)
	return nil
}

// ChooseAnswer scores value against the current question and serves the
// next one. Calls outside PhaseRunning are ignored.
func (c *Controller) ChooseAnswer(value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		c.logger.Debug("answer ignored", "phase", c.phase, "value", value)
		return
	}

	correct := problemgen.CheckAnswer(value, c.question)
	if correct {
		c.right++
	}
	c.total++
	c.logger.Debug("answer",
		"sum", c.question.Sum,
		"visible", c.question.VisibleNumber,
		"value", value,
		"correct", correct,
	)

	c.observer.Progress(NewProgress(c.right, c.total, c.settings))

	q, err := c.generate(c.settings)
	if err != nil {
		c.logger.Error("question generation failed, keeping current question", "error", err)
		return
	}
	c.question = q
	c.observer.Question(*q)
}

// Stop tears the session down without producing a result. It is a no-op
// unless the session is running.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.phase != PhaseRunning {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseFinished
	timer := c.timer
	c.timer = nil
	c.logger.Info("session stopped", "right", c.right, "questions", c.total)
	c.mu.Unlock()

	if timer != nil {
		timer.Cancel()
	}
}

func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		return
	}
	c.remaining -= c.interval
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.emitTimeLocked()
}

func (c *Controller) expire() {
	c.mu.Lock()
	if c.phase != PhaseRunning {
		c.mu.Unlock()
		return
	}

	c.remaining = 0
	c.emitTimeLocked()

	res := buildResult(c.id, c.level, c.settings, c.right, c.total)
	c.result = &res
	c.phase = PhaseFinished
	timer := c.timer
	c.timer = nil

	c.logger.Info("session finished",
		"winner", res.Winner,
		"right", res.CountOfRightAnswers,
		"questions", res.CountOfQuestions,
		"percent", res.Percent(),
	)
	c.observer.Result(res)
	c.mu.Unlock()

	if timer != nil {
		timer.Cancel()
	}
}

// emitTimeLocked publishes the remaining time unless it is unchanged.
func (c *Controller) emitTimeLocked() {
	text := FormatTime(c.remaining)
	if text == c.lastTime {
		return
	}
	c.lastTime = text
	c.observer.TimeLeft(text)
}

// generate asks the generator for a question, retrying retryable
// validation failures.
func (c *Controller) generate(settings levels.Settings) (*problemgen.Question, error) {
	input := problemgen.GenerateInput{
		MaxSumValue: settings.MaxSumValue,
		OptionCount: c.optionCount,
	}

	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		q, err := c.gen.Generate(input)
		if err == nil {
			return q, nil
		}
		lastErr = err
		if !problemgen.IsRetryable(err) {
			break
		}
		c.logger.Debug("regenerating question", "attempt", attempt, "error", err)
	}
	return nil, lastErr
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ID returns the session's unique identifier.
func (c *Controller) ID() string {
	return c.id
}

// Settings returns the resolved settings. Zero before Start.
func (c *Controller) Settings() levels.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Progress returns the current scoring snapshot.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewProgress(c.right, c.total, c.settings)
}

// Question returns the question currently displayed, if any.
func (c *Controller) Question() (problemgen.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.question == nil {
		return problemgen.Question{}, false
	}
	return *c.question, true
}

// Result returns the final result once the session has expired.
// A stopped session never has one.
func (c *Controller) Result() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// Remaining returns the time left on the countdown.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
