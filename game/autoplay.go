package game

import (
	"image"
	"math/rand"

	"github.com/oklog/ulid/v2"
)

// Autoplayer produces per-frame input that picks cards, so a match can run
// without a window. It remembers faces it has seen with probability Recall.
type Autoplayer struct {
	Recall float64

	rng  *rand.Rand
	seen map[ulid.ULID]string
}

func NewAutoplayer(rng *rand.Rand, recall float64) *Autoplayer {
	return &Autoplayer{Recall: recall, rng: rng, seen: make(map[ulid.ULID]string)}
}

// Next returns the input for the coming frame. While the board is frozen or
// a round is waiting for evaluation it parks the mouse off the board.
func (a *Autoplayer) Next(s *Session, view image.Point) Input {
	idle := Input{View: view}
	cards := a.observe(s)
	if s.WaitTimer() >= 0 || s.SelectedCount() >= 2 || !s.Running() {
		return idle
	}
	player, err := s.Player()
	if err != nil {
		return idle
	}
	target := a.choose(cards, s.SelectedCount() == 1)
	if target == nil {
		return idle
	}
	at := Project(target.Base(), player.Position(), view)
	return Input{
		Events: []Event{MouseDown(MouseLeft, at.X, at.Y)},
		Mouse:  at,
		View:   view,
	}
}

// observe returns the cards still in play and notes the faces that are up.
func (a *Autoplayer) observe(s *Session) []*CardEntity {
	var open []*CardEntity
	for _, e := range s.Entities() {
		c, ok := e.(*CardEntity)
		if !ok {
			continue
		}
		if c.Resolved() {
			delete(a.seen, c.ID())
			continue
		}
		if c.Selected() {
			if _, known := a.seen[c.ID()]; !known && a.rng.Float64() < a.Recall {
				a.seen[c.ID()] = c.Card().Name
			}
		}
		open = append(open, c)
	}
	return open
}

// choose prefers completing a known pair. Cards still face up from the
// previous round only count as a first pick when holding is set.
func (a *Autoplayer) choose(cards []*CardEntity, holding bool) *CardEntity {
	var candidates []*CardEntity
	var picked *CardEntity
	for _, c := range cards {
		if c.Selected() {
			if holding {
				picked = c
			}
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}

	if picked != nil {
		for _, c := range candidates {
			if n, ok := a.seen[c.ID()]; ok && n == picked.Card().Name {
				return c
			}
		}
	} else {
		names := make(map[string]*CardEntity)
		for _, c := range candidates {
			n, ok := a.seen[c.ID()]
			if !ok {
				continue
			}
			if other, ok := names[n]; ok {
				return other
			}
			names[n] = c
		}
	}
	return candidates[a.rng.Intn(len(candidates))]
}
