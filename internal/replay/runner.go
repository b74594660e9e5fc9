// Package replay drives a game session from a parsed input script with a
// fixed frame time.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/parser"
)

const DefaultDelta float32 = 1.0 / 60

var (
	ErrExpectation = errors.New("expectation failed")
	ErrTickLimit   = errors.New("tick limit reached")
)

// ExpectationError is one failed expect line.
type ExpectationError struct {
	Line    int
	Subject parser.Subject
	Want    string
	Got     string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("line %d: expected %s %s, got %s", e.Line, e.Subject, e.Want, e.Got)
}

func (e *ExpectationError) Unwrap() error {
	return ErrExpectation
}

// Runner holds the replayed controller and feeds it to a session one
// tick at a time. It is the session's input provider.
type Runner struct {
	session  *game.Session
	pad      game.Controller
	delta    float32
	maxTicks int
	ticks    int
	elapsed  float32
	log      logrus.FieldLogger
}

func NewRunner(session *game.Session, delta float32, maxTicks int, log logrus.FieldLogger) *Runner {
	if delta <= 0 {
		delta = DefaultDelta
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{session: session, delta: delta, maxTicks: maxTicks, log: log}
}

var _ game.InputProvider = (*Runner)(nil)

// Poll returns the currently held controller state.
func (r *Runner) Poll() game.InputSnapshot {
	return game.InputSnapshot{Delta: r.delta, Controllers: []game.Controller{r.pad}}
}

func (r *Runner) Ticks() int {
	return r.ticks
}

func (r *Runner) Elapsed() float32 {
	return r.elapsed
}

// Run executes script. Failed expectations do not stop the run; they are
// joined into the returned error. Cancellation and the tick limit stop it.
func (r *Runner) Run(ctx context.Context, script parser.Script) error {
	var failures []error
	for _, step := range script {
		r.log.WithFields(logrus.Fields{
			"line": step.Line,
			"op":   step.Op.String(),
			"tick": r.ticks,
		}).Debug("script step")

		switch step.Op {
		case parser.OpPress:
			r.setButton(step.Button, true)
		case parser.OpRelease:
			r.setButton(step.Button, false)
		case parser.OpDPad:
			r.pad.DPad = step.Dir
		case parser.OpDelta:
			if step.Seconds > 0 {
				r.delta = step.Seconds
			}
		case parser.OpWait:
			if err := r.advance(ctx, r.waitTicks(step)); err != nil {
				return errors.Join(append(failures, err)...)
			}
		case parser.OpExpect:
			if err := r.check(step); err != nil {
				r.log.WithField("line", step.Line).Warn(err.Error())
				failures = append(failures, err)
			}
		}
	}
	return errors.Join(failures...)
}

func (r *Runner) setButton(b parser.Button, down bool) {
	switch b {
	case parser.ButtonA:
		r.pad.A = down
	case parser.ButtonB:
		r.pad.B = down
	case parser.ButtonAll:
		r.pad.A, r.pad.B = down, down
	}
}

func (r *Runner) waitTicks(step parser.Step) int {
	if step.Seconds > 0 {
		return int(math.Ceil(float64(step.Seconds/r.delta) - 1e-6))
	}
	return step.Ticks
}

func (r *Runner) advance(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.maxTicks > 0 && r.ticks >= r.maxTicks {
			return fmt.Errorf("%w after %d ticks", ErrTickLimit, r.ticks)
		}
		in := r.Poll()
		r.session.Tick(in)
		r.ticks++
		r.elapsed += in.Delta
	}
	return nil
}

func (r *Runner) check(step parser.Step) error {
	exp := step.Expect
	player := r.session.World.Player()
	fail := func(want, got string) error {
		return &ExpectationError{Line: step.Line, Subject: exp.Subject, Want: want, Got: got}
	}

	switch exp.Subject {
	case parser.SubjectHand:
		if player.CurrentHand != exp.Dir {
			return fail(exp.Dir.String(), player.CurrentHand.String())
		}
	case parser.SubjectItem:
		got := parser.EmptyHand
		if item, ok := player.CurrentItem(); ok {
			got = item.String()
		}
		if parser.Normalise(got) != exp.Text {
			return fail(exp.Text, got)
		}
	case parser.SubjectState:
		if got := game.StateName(r.session.Selector.State); got != exp.Text {
			return fail(exp.Text, got)
		}
	case parser.SubjectThirst, parser.SubjectHunger, parser.SubjectSleep:
		got := statValue(player, exp.Subject)
		if math.Abs(float64(got-exp.Value)) > 1e-3 {
			return fail(fmt.Sprintf("%.3f", exp.Value), fmt.Sprintf("%.3f", got))
		}
	}
	return nil
}

func statValue(p *game.Player, s parser.Subject) float32 {
	switch s {
	case parser.SubjectThirst:
		return p.Thirst
	case parser.SubjectHunger:
		return p.Hunger
	case parser.SubjectSleep:
		return p.Sleep
	}
	return 0
}
