package spectate

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/game"
)

// Topic carries every round and match event.
const Topic = "rounds"

type Event struct {
	Type  string      `json:"type"`
	Round *RoundEvent `json:"round,omitempty"`
	Match *MatchEvent `json:"match,omitempty"`
}

type RoundEvent struct {
	Round   int       `json:"round"`
	Player  string    `json:"player"`
	Matched bool      `json:"matched"`
	Cards   [2]string `json:"cards"`
	Next    string    `json:"next"`
}

type MatchEvent struct {
	ID        string `json:"id"`
	Player1   int    `json:"player1"`
	Player2   int    `json:"player2"`
	Rounds    int    `json:"rounds"`
	Verdict   string `json:"verdict"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// Feed is a session listener that publishes every event to the broker. The
// session thread only enqueues; Run does the publishing.
type Feed struct {
	broker Broker
	events chan []byte
	log    zerolog.Logger
}

func NewFeed(broker Broker, log zerolog.Logger) *Feed {
	return &Feed{broker: broker, events: make(chan []byte, 64), log: log}
}

func (f *Feed) RoundEvaluated(r game.RoundResult) {
	f.enqueue(Event{Type: "round", Round: &RoundEvent{
		Round:   r.Round,
		Player:  r.Player.String(),
		Matched: r.Outcome == game.Matched,
		Cards:   [2]string{r.Cards[0].Name, r.Cards[1].Name},
		Next:    r.Next.String(),
	}})
}

func (f *Feed) MatchFinished(m game.MatchSummary) {
	f.enqueue(Event{Type: "match", Match: &MatchEvent{
		ID:        m.ID.String(),
		Player1:   m.Player1,
		Player2:   m.Player2,
		Rounds:    m.Rounds,
		Verdict:   m.Verdict.String(),
		ElapsedMS: m.Elapsed.Milliseconds(),
	}})
}

func (f *Feed) enqueue(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		f.log.Error().Err(err).Msg("failed to encode event")
		return
	}
	select {
	case f.events <- data:
	default:
		f.log.Warn().Str("type", e.Type).Msg("feed backlog full, dropping event")
	}
}

// Run publishes queued events until ctx is done.
func (f *Feed) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-f.events:
			if err := f.broker.Publish(ctx, Topic, data); err != nil {
				f.log.Error().Err(err).Msg("failed to publish event")
			}
		}
	}
}
