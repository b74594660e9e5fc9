package observe

import "github.com/appengine-ltd/walden/internal/game"

// Tee fans every record out to each non-nil recorder.
func Tee(recs ...game.Recorder) game.Recorder {
	out := make(tee, 0, len(recs))
	for _, r := range recs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type tee []game.Recorder

func (t tee) RecordTick(delta float32) {
	for _, r := range t {
		r.RecordTick(delta)
	}
}

func (t tee) RecordTransition(from, to string) {
	for _, r := range t {
		r.RecordTransition(from, to)
	}
}

func (t tee) RecordAction(item string, outcome game.Outcome) {
	for _, r := range t {
		r.RecordAction(item, outcome)
	}
}

func (t tee) RecordSwap(from, to game.Direction) {
	for _, r := range t {
		r.RecordSwap(from, to)
	}
}
