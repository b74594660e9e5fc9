package parser

import "github.com/appengine-ltd/walden/internal/game"

// Quantity is a parsed duration. Exactly one of Ticks or Seconds is set.
type Quantity struct {
	Raw     string
	Ticks   int
	Seconds float32
}

// Intent is one parsed script line before it is compiled into steps.
type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
}

// Op is what a compiled step does to the replayed controller.
type Op uint8

const (
	OpPress Op = iota
	OpRelease
	OpDPad
	OpWait
	OpDelta
	OpExpect
)

func (o Op) String() string {
	switch o {
	case OpPress:
		return "press"
	case OpRelease:
		return "release"
	case OpDPad:
		return "dpad"
	case OpWait:
		return "wait"
	case OpDelta:
		return "delta"
	case OpExpect:
		return "expect"
	}
	return "unknown"
}

type Button uint8

const (
	ButtonA Button = iota + 1
	ButtonB
	ButtonAll
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonAll:
		return "all"
	}
	return "none"
}

// Subject is the quantity an expect step checks.
type Subject string

const (
	SubjectHand   Subject = "hand"
	SubjectItem   Subject = "item"
	SubjectState  Subject = "state"
	SubjectThirst Subject = "thirst"
	SubjectHunger Subject = "hunger"
	SubjectSleep  Subject = "sleep"
)

type Expectation struct {
	Subject Subject
	Dir     game.Direction
	Value   float32
	Text    string
}

// Step is one compiled script instruction. Button and d-pad steps change
// held levels; only wait steps advance time.
type Step struct {
	Line    int
	Op      Op
	Button  Button
	Dir     game.Direction
	Ticks   int
	Seconds float32
	Expect  Expectation
}

type Script []Step
