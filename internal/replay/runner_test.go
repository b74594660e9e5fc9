package replay

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/observe"
	"github.com/appengine-ltd/walden/internal/parser"
)

const swapAndDrink = `
delta 1ms
hold a
wait 1
dpad left
wait 1
release a        # swap while the d-pad still points left
wait 1
release dpad
expect hand left
expect item bottle(full)
expect state idle
tap a
wait 1
expect thirst 1
expect item bottle(empty)
`

func mustScript(t *testing.T, src string) parser.Script {
	t.Helper()
	script, err := parser.ParseScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse script: %v", err)
	}
	return script
}

func TestPlayExpectsEmptyActiveHand(t *testing.T) {
	for _, word := range []string{"empty", "nothing"} {
		_, err := Play(context.Background(), mustScript(t, "wait 1\nexpect item "+word), Options{
			Layout: game.DefaultLayout(),
		})
		if err != nil {
			t.Fatalf("expect item %s: %v", word, err)
		}
	}

	_, err := Play(context.Background(), mustScript(t, "wait 1\nexpect item bottle(full)"), Options{
		Layout: game.DefaultLayout(),
	})
	var exp *ExpectationError
	if !errors.As(err, &exp) || exp.Got != parser.EmptyHand {
		t.Fatalf("expected a failed expectation naming the empty hand, got %v", err)
	}
}

func TestPlaySwapAndDrink(t *testing.T) {
	res, err := Play(context.Background(), mustScript(t, swapAndDrink), Options{
		Layout: game.Layout{Spawn: game.Vec2{}},
	})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Ticks != 5 {
		t.Fatalf("expected 5 ticks, got %d", res.Ticks)
	}
	if got := res.Metrics.Total(observe.MetricHandSwaps); got != 1 {
		t.Fatalf("expected one swap, got %d", got)
	}
	if got := res.Metrics[observe.MetricItemActions+"{item=bottle(full),outcome=drank}"]; got != 1 {
		t.Fatalf("expected one drink, got %d (%v)", got, res.Metrics.Keys())
	}

	var buf bytes.Buffer
	if err := res.Report(&buf); err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(buf.String(), "hand left  * bottle(empty)") {
		t.Fatalf("expected report to mark the active left hand, got:\n%s", buf.String())
	}
}

func TestRunnerCollectsFailedExpectations(t *testing.T) {
	script := mustScript(t, "wait 1\nexpect hand right\nexpect state deciding\nwait 1\n")
	res, err := Play(context.Background(), script, Options{})
	if !errors.Is(err, ErrExpectation) {
		t.Fatalf("expected an expectation failure, got %v", err)
	}
	var expErr *ExpectationError
	if !errors.As(err, &expErr) || expErr.Line != 2 || expErr.Got != "up" {
		t.Fatalf("expected line 2 to report hand up, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected both failures, got %v", err)
	}
	if res.Ticks != 2 {
		t.Fatalf("expected the run to continue after a failure, got %d ticks", res.Ticks)
	}
}

func TestRunnerStopsAtTickLimit(t *testing.T) {
	res, err := Play(context.Background(), mustScript(t, "wait 10"), Options{MaxTicks: 3})
	if !errors.Is(err, ErrTickLimit) {
		t.Fatalf("expected tick limit error, got %v", err)
	}
	if res.Ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", res.Ticks)
	}
}

func TestRunnerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Play(ctx, mustScript(t, "wait 10"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Ticks != 0 {
		t.Fatalf("expected no ticks, got %d", res.Ticks)
	}
}

func TestWaitInSecondsUsesCurrentDelta(t *testing.T) {
	w, err := game.NewWorld(game.Layout{}, nil)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	r := NewRunner(game.NewSession(w, game.SessionConfig{}), 0, 0, nil)
	if err := r.Run(context.Background(), mustScript(t, "delta 0.1\nwait 1s\nwait 2")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Ticks() != 12 {
		t.Fatalf("expected 12 ticks, got %d", r.Ticks())
	}
	if snap := r.Poll(); snap.Delta != 0.1 || len(snap.Controllers) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestPlayRejectsBadLayout(t *testing.T) {
	_, err := Play(context.Background(), nil, Options{Layout: game.Layout{Obstacles: []game.Placement{{}}}})
	if err == nil {
		t.Fatalf("expected the missing kind to be reported")
	}
}

type tickCounter struct{ ticks int }

func (c *tickCounter) RecordTick(float32)                        { c.ticks++ }
func (c *tickCounter) RecordTransition(string, string)           {}
func (c *tickCounter) RecordAction(string, game.Outcome)         {}
func (c *tickCounter) RecordSwap(game.Direction, game.Direction) {}

func TestPlayFeedsExtraRecorder(t *testing.T) {
	extra := &tickCounter{}
	res, err := Play(context.Background(), mustScript(t, "wait 4\n"), Options{Recorder: extra})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if extra.ticks != 4 || res.Metrics.Total(observe.MetricTicks) != 4 {
		t.Fatalf("expected both recorders to see 4 ticks, got %d and %d", extra.ticks, res.Metrics.Total(observe.MetricTicks))
	}
}
