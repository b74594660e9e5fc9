package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appengine-ltd/walden/internal/game"
)

// LineError ties a script problem to its line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, strings.TrimSpace(e.Text), e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

var ErrUnclear = errors.New("unclear command")

// ParseScript reads a whole script, one command per line. Blank lines and
// '#' comments are skipped. Every bad line is reported.
func (p *Parser) ParseScript(r io.Reader) (Script, error) {
	var (
		script Script
		errs   []error
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		body := strings.TrimSpace(stripComment(text))
		if body == "" {
			continue
		}
		steps, err := p.Compile(p.Parse(body), line)
		if err != nil {
			errs = append(errs, &LineError{Line: line, Text: text, Err: err})
			continue
		}
		script = append(script, steps...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: read script: %w", err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return script, nil
}

// ParseScript parses r with the default verbs.
func ParseScript(r io.Reader) (Script, error) {
	return New().ParseScript(r)
}

// Compile turns a parsed intent into steps. Tap and timed d-pad lines
// expand into several steps.
func (p *Parser) Compile(intent Intent, line int) ([]Step, error) {
	if intent.Clarify != nil {
		if len(intent.Clarify.Options) > 0 {
			names := make([]string, 0, len(intent.Clarify.Options))
			for _, o := range intent.Clarify.Options {
				names = append(names, o.Verb)
			}
			return nil, fmt.Errorf("%w: %s %s", ErrUnclear, intent.Clarify.Prompt, strings.Join(names, " or "))
		}
		return nil, fmt.Errorf("%w: %s", ErrUnclear, intent.Clarify.Prompt)
	}
	def, ok := p.registry.command(intent.Verb)
	if !ok {
		return nil, fmt.Errorf("unknown verb %q", intent.Verb)
	}

	switch def.HandlerKey {
	case "press":
		b, err := pressButton(intent.Args[0])
		if err != nil {
			return nil, err
		}
		if intent.Quantity != nil {
			return nil, fmt.Errorf("press takes no duration; use tap")
		}
		return []Step{{Line: line, Op: OpPress, Button: b}}, nil

	case "release":
		if intent.Quantity != nil {
			return nil, fmt.Errorf("release takes no duration")
		}
		if len(intent.Args) == 0 {
			return []Step{
				{Line: line, Op: OpRelease, Button: ButtonAll},
				{Line: line, Op: OpDPad, Dir: game.NoDirection},
			}, nil
		}
		switch intent.Args[0] {
		case "dpad", "pad":
			return []Step{{Line: line, Op: OpDPad, Dir: game.NoDirection}}, nil
		case "all", "both":
			return []Step{{Line: line, Op: OpRelease, Button: ButtonAll}}, nil
		}
		b, err := pressButton(intent.Args[0])
		if err != nil {
			return nil, err
		}
		return []Step{{Line: line, Op: OpRelease, Button: b}}, nil

	case "tap":
		b, err := pressButton(intent.Args[0])
		if err != nil {
			return nil, err
		}
		hold := Step{Line: line, Op: OpWait, Ticks: 1}
		if intent.Quantity != nil {
			hold.Ticks, hold.Seconds = intent.Quantity.Ticks, intent.Quantity.Seconds
		}
		return []Step{
			{Line: line, Op: OpPress, Button: b},
			hold,
			{Line: line, Op: OpRelease, Button: b},
		}, nil

	case "dpad":
		d, ok := mapDirection(intent.Args[0])
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", intent.Args[0])
		}
		steps := []Step{{Line: line, Op: OpDPad, Dir: d}}
		if intent.Quantity != nil {
			steps = append(steps,
				Step{Line: line, Op: OpWait, Ticks: intent.Quantity.Ticks, Seconds: intent.Quantity.Seconds},
				Step{Line: line, Op: OpDPad, Dir: game.NoDirection},
			)
		}
		return steps, nil

	case "wait":
		step := Step{Line: line, Op: OpWait, Ticks: 1}
		if intent.Quantity != nil {
			step.Ticks, step.Seconds = intent.Quantity.Ticks, intent.Quantity.Seconds
		}
		return []Step{step}, nil

	case "delta":
		if intent.Quantity == nil {
			return nil, fmt.Errorf("delta needs a frame time such as 0.016 or 16ms")
		}
		// A bare integer is read as whole seconds here.
		seconds := intent.Quantity.Seconds
		if seconds == 0 {
			seconds = float32(intent.Quantity.Ticks)
		}
		return []Step{{Line: line, Op: OpDelta, Seconds: seconds}}, nil

	case "expect":
		exp, err := compileExpectation(intent.Args)
		if err != nil {
			return nil, err
		}
		return []Step{{Line: line, Op: OpExpect, Expect: exp}}, nil
	}
	return nil, fmt.Errorf("verb %q has no handler", intent.Verb)
}

func pressButton(token string) (Button, error) {
	switch token {
	case "a":
		return ButtonA, nil
	case "b":
		return ButtonB, nil
	}
	return 0, fmt.Errorf("unknown button %q; valid buttons: a, b", token)
}

// EmptyHand is how an item expectation names a hand that holds nothing.
const EmptyHand = "empty"

func compileExpectation(args []string) (Expectation, error) {
	subject := Subject(args[0])
	value := strings.Join(args[1:], " ")
	switch subject {
	case SubjectHand:
		d, ok := mapDirection(value)
		if !ok || d == game.NoDirection {
			return Expectation{}, fmt.Errorf("expect hand needs up, down, left or right, got %q", value)
		}
		return Expectation{Subject: subject, Dir: d}, nil
	case SubjectState:
		for _, name := range stateNames {
			if Normalise(name) == value {
				return Expectation{Subject: subject, Text: name}, nil
			}
		}
		return Expectation{}, fmt.Errorf("unknown selector state %q", value)
	case SubjectItem:
		if value == "nothing" || value == "none" {
			value = EmptyHand
		}
		return Expectation{Subject: subject, Text: value}, nil
	case SubjectThirst, SubjectHunger, SubjectSleep:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil || v < 0 || v > 1 {
			return Expectation{}, fmt.Errorf("expect %s needs a value in [0, 1], got %q", subject, value)
		}
		return Expectation{Subject: subject, Value: float32(v)}, nil
	}
	return Expectation{}, fmt.Errorf("unknown expectation %q", args[0])
}

var stateNames = []string{
	game.StateName(game.Idle{}),
	game.StateName(game.Deciding{}),
	game.StateName(game.ItemChosen{}),
	game.StateName(game.AboutToCancel{}),
}
