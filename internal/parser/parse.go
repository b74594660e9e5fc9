package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Parse maps one line to a verb and its arguments. Typos are tolerated;
// ambiguous or low confidence lines come back with Clarify set.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: Normalise(raw),
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		prompt := "I couldn't map that to a command. Try press, release, tap, dpad, wait, delta, expect."
		if verb, ok := p.registry.suggest(tokens[0]); ok {
			prompt = fmt.Sprintf("I couldn't map that to a command. Did you mean %q?", verb)
		}
		intent.Clarify = &ClarifyQuestion{Prompt: prompt}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	def, _ := p.registry.command(intent.Verb)
	argsTokens, q := splitQuantity(def, argsTokens)
	intent.Quantity = q

	args, argScore := resolveArgs(def, argsTokens)
	intent.Args = args
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}
	if len(intent.Args) > def.MaxArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s takes at most %d argument(s), got %q.", def.Canonical, def.MaxArgs, strings.Join(intent.Args, " "))}
		intent.Confidence = 0.42
		return intent
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

// splitQuantity pulls a trailing duration off the arguments. Expect lines
// keep their numbers as values.
func splitQuantity(def CommandDef, tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 || def.HandlerKey == "expect" {
		return tokens, nil
	}
	for i := range tokens {
		if q, used := parseQuantity(tokens[i:]); q != nil && i+used == len(tokens) {
			return tokens[:i], q
		}
	}
	return tokens, nil
}

// resolveArgs snaps button and direction words onto their canonical
// spelling. Anything else is passed through.
func resolveArgs(def CommandDef, args []string) ([]string, float64) {
	if len(args) == 0 {
		return nil, 0.9
	}
	var vocab []string
	switch def.HandlerKey {
	case "press", "tap":
		vocab = buttonWords
	case "release":
		vocab = releaseWords
	case "dpad":
		vocab = directionWords
	case "expect":
		vocab = subjectWords
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i, token := range args {
		if i == 0 && len(vocab) > 0 {
			match, confidence, tie := bestMatches(token, vocab)
			if len(match) > 0 && !tie {
				resolved = append(resolved, match[0])
				score = minScore(score, confidence)
				continue
			}
		}
		resolved = append(resolved, token)
		score -= 0.02
	}
	return resolved, clampScore(score)
}

var (
	buttonWords    = []string{"a", "b"}
	releaseWords   = []string{"a", "b", "all", "both", "dpad", "pad"}
	directionWords = []string{"up", "down", "left", "right", "north", "south", "east", "west", "none", "neutral", "centre", "center"}
	subjectWords   = []string{string(SubjectHand), string(SubjectItem), string(SubjectState), string(SubjectThirst), string(SubjectHunger), string(SubjectSleep)}
)

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			if len(token) < 3 || len(cand) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// String renders the intent in canonical form, e.g. "wait 10".
func (intent Intent) String() string {
	verb := Normalise(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := Normalise(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, Normalise(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
