package game

import "github.com/sirupsen/logrus"

// Recorder receives gameplay counters. observe.Metrics implements it.
type Recorder interface {
	RecordTick(delta float32)
	RecordTransition(from, to string)
	RecordAction(item string, outcome Outcome)
	RecordSwap(from, to Direction)
}

type nopRecorder struct{}

func (nopRecorder) RecordTick(float32)              {}
func (nopRecorder) RecordTransition(string, string) {}
func (nopRecorder) RecordAction(string, Outcome)    {}
func (nopRecorder) RecordSwap(Direction, Direction) {}

type SessionConfig struct {
	HalfViewport Vec2
	Log          logrus.FieldLogger
	Recorder     Recorder
}

// Session owns a world together with the interaction state around the
// player and advances all of it in a fixed per-tick order.
type Session struct {
	World      *World
	Selector   Selector
	Indicators [3]StatIndicator
	Camera     Camera
	ButtonA    bool
	ButtonB    bool

	halfViewport Vec2
	log          logrus.FieldLogger
	rec          Recorder
}

func NewSession(world *World, cfg SessionConfig) *Session {
	if cfg.HalfViewport.IsZero() {
		cfg.HalfViewport = DefaultHalfViewport
	}
	if cfg.Log == nil {
		cfg.Log = world.log
	}
	if cfg.Recorder == nil {
		cfg.Recorder = nopRecorder{}
	}
	player := *world.Player()
	return &Session{
		World:    world,
		Selector: NewSelector(player),
		Indicators: [3]StatIndicator{
			NewStatIndicator(StatHunger, player),
			NewStatIndicator(StatThirst, player),
			NewStatIndicator(StatSleep, player),
		},
		halfViewport: cfg.HalfViewport,
		log:          cfg.Log,
		rec:          cfg.Recorder,
	}
}

// Tick runs one frame: steering, selector, simulation, camera. Without a
// controller the interaction stages are skipped and the world keeps moving.
func (s *Session) Tick(in InputSnapshot) {
	delta := max(in.Delta, 0)

	if pad, ok := in.primary(); ok {
		s.updateInteraction(pad, delta)
	}

	s.World.Step(delta)

	player := s.World.Player()
	s.Camera.Follow(s.World.PlayerPosition(), player.LogSpeed, s.halfViewport)
	s.rec.RecordTick(delta)
}

func (s *Session) updateInteraction(pad Controller, delta float32) {
	player := s.World.Player()
	_, idle := s.Selector.State.(Idle)
	if s.Selector.State == nil {
		idle = true
	}
	player.Steer(idle, pad.DPad, delta)

	s.Selector.Player = *player
	for i := range s.Indicators {
		s.Indicators[i].SetPlayer(player)
	}

	s.ButtonA = pad.A
	s.ButtonB = pad.B

	t := s.Selector.Advance(pad.A, pad.DPad, delta)
	if StateName(t.From) != StateName(t.To) {
		s.log.WithFields(logrus.Fields{
			"from": t.From.String(),
			"to":   t.To.String(),
		}).Debug("selector transition")
		s.rec.RecordTransition(StateName(t.From), StateName(t.To))
	}
	switch t.Effect {
	case EffectTriggerAction:
		s.TriggerAction()
	case EffectSwapItem:
		s.SwapItem(t.Slot)
	}

	s.Selector.Damp()
}

// TriggerAction uses the item in the active hand. An empty hand does
// nothing.
func (s *Session) TriggerAction() {
	player := s.World.Player()
	hand := player.CurrentHand
	item, ok := player.Hands.Get(hand)
	if !ok {
		s.log.WithField("slot", hand.String()).Info("Doing action with empty hand")
		return
	}

	s.log.WithField("item", item.String()).Info("Doing action")
	next, keep, outcome := doAction(item, s.World)
	if keep {
		player.Hands.Set(hand, next)
	} else {
		player.Hands.Remove(hand)
	}
	s.rec.RecordAction(item.String(), outcome)
}

// SwapItem makes slot the active hand. Items stay where they are and an
// empty slot is a valid target.
func (s *Session) SwapItem(slot Direction) {
	if !slot.Valid() {
		return
	}
	player := s.World.Player()
	from := player.CurrentHand
	s.log.WithFields(logrus.Fields{
		"from": describeHand(player, from),
		"to":   describeHand(player, slot),
	}).Info("Swapping items")
	player.CurrentHand = slot
	s.rec.RecordSwap(from, slot)
}

// Tooltip is the hint for the active hand, if its action would do something.
func (s *Session) Tooltip() (Tooltip, bool) {
	item, ok := s.World.Player().CurrentItem()
	if !ok {
		return "", false
	}
	return ActionTooltip(item, s.World)
}

func (s *Session) HalfViewport() Vec2 {
	return s.halfViewport
}

func describeHand(p *Player, d Direction) string {
	if item, ok := p.Hands.Get(d); ok {
		return item.String()
	}
	return "nothing"
}
