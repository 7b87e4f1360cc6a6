package game

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Outcome int

const (
	Missed Outcome = iota
	Matched
)

func (o Outcome) String() string {
	if o == Matched {
		return "matched"
	}
	return "missed"
}

// RoundResult is produced once per evaluation of two picks. The session
// delivers it to the entities on the first frame after the reveal pause, and
// to listeners immediately.
type RoundResult struct {
	Round    int
	Player   Turn
	Outcome  Outcome
	Cards    [2]Card
	Entities [2]ulid.ULID
	// Next is the player holding the turn after the evaluation.
	Next Turn
}

// Includes reports whether the entity was one of the two picks.
func (r RoundResult) Includes(id ulid.ULID) bool {
	return r.Entities[0] == id || r.Entities[1] == id
}

type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictPlayer1
	VerdictPlayer2
	VerdictDraw
)

func (v Verdict) String() string {
	switch v {
	case VerdictPlayer1:
		return "Player 1 wins"
	case VerdictPlayer2:
		return "Player 2 wins"
	case VerdictDraw:
		return "draw"
	}
	return "pending"
}

// Winner returns the winning player, false for a pending match or a draw.
func (v Verdict) Winner() (Turn, bool) {
	switch v {
	case VerdictPlayer1:
		return Player1, true
	case VerdictPlayer2:
		return Player2, true
	}
	return Player1, false
}

type MatchSummary struct {
	ID       ulid.ULID
	Player1  int
	Player2  int
	Rounds   int
	Verdict  Verdict
	Elapsed  time.Duration
	Finished time.Time
}

// Listener observes a match from outside the frame loop. Calls happen on the
// frame goroutine and must not block.
type Listener interface {
	RoundEvaluated(r RoundResult)
	MatchFinished(m MatchSummary)
}

type selection struct {
	card   Card
	entity ulid.ULID
}

func emptySelection() [2]selection {
	return [2]selection{{card: EmptyCard()}, {card: EmptyCard()}}
}
