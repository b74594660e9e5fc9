package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/appengine-ltd/walden/internal/game"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// Normalise lower-cases raw, keeps letters, digits and decimal points and
// folds every other separator into a single space.
func Normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '(' || r == ')' || r == ',' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// stripComment drops everything after a '#'.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// parseQuantity reads a duration from the leading tokens: "10", "10 ticks",
// "1.5s", "1.5 seconds", "250ms". It reports how many tokens it used.
func parseQuantity(tokens []string) (*Quantity, int) {
	if len(tokens) == 0 {
		return nil, 0
	}
	token := tokens[0]
	unitToken := ""
	if len(tokens) > 1 {
		unitToken = tokens[1]
	}

	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		switch unitToken {
		case "tick", "ticks", "frame", "frames", "t":
			return &Quantity{Raw: token + " " + unitToken, Ticks: n}, 2
		case "s", "sec", "secs", "second", "seconds":
			return &Quantity{Raw: token + " " + unitToken, Seconds: float32(n)}, 2
		case "ms":
			return &Quantity{Raw: token + " " + unitToken, Seconds: float32(n) / 1000}, 2
		}
		return &Quantity{Raw: token, Ticks: n}, 1
	}
	if v, err := strconv.ParseFloat(token, 32); err == nil && v >= 0 && !math.IsInf(v, 1) {
		switch unitToken {
		case "ms":
			return &Quantity{Raw: token + " " + unitToken, Seconds: float32(v) / 1000}, 2
		case "s", "sec", "secs", "second", "seconds":
			return &Quantity{Raw: token + " " + unitToken, Seconds: float32(v)}, 2
		}
		return &Quantity{Raw: token, Seconds: float32(v)}, 1
	}
	for _, suffix := range []string{"ms", "seconds", "second", "secs", "sec", "s"} {
		n, ok := strings.CutSuffix(token, suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(n, 32)
		if err != nil || v < 0 || math.IsInf(v, 1) {
			continue
		}
		if suffix == "ms" {
			v /= 1000
		}
		return &Quantity{Raw: token, Seconds: float32(v)}, 1
	}
	for _, suffix := range []string{"ticks", "tick", "t"} {
		n, ok := strings.CutSuffix(token, suffix)
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(n); err == nil && v >= 0 {
			return &Quantity{Raw: token, Ticks: v}, 1
		}
	}
	return nil, 0
}

func mapDirection(token string) (game.Direction, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "":
		return game.NoDirection, false
	case "u":
		return game.Up, true
	case "d":
		return game.Down, true
	case "l":
		return game.Left, true
	case "r":
		return game.Right, true
	case "neutral", "centre", "center", "off":
		return game.NoDirection, true
	}
	return game.ParseDirection(token)
}
