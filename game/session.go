package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

// WaitDuration is the pause in seconds after two picks are evaluated, during
// which the board is frozen so both players can see the faces.
const WaitDuration float32 = 2.0

var (
	ErrNoPlayer      = errors.New("scene has no player entity")
	ErrEmptyCatalog  = errors.New("card catalog is empty")
	ErrTooManyCards  = errors.New("card catalog does not fit on the board")
	errPlayerMissing = fmt.Errorf("%w: index unset", ErrNoPlayer)
)

// BoardPositions is the fixed 6x3 grid, column by column.
var BoardPositions = [18]Vec{
	{-104, -70}, {-104, 0}, {-104, 70},
	{-56, -70}, {-56, 0}, {-56, 70},
	{-8, -70}, {-8, 0}, {-8, 70},
	{40, -70}, {40, 0}, {40, 70},
	{88, -70}, {88, 0}, {88, 70},
	{136, -70}, {136, 0}, {136, 70},
}

type Options struct {
	Logger    *zerolog.Logger
	Sounds    SoundPlayer
	Rand      *rand.Rand
	ClickMode ClickMode
	Listeners []Listener
}

// Session owns the entities and the round state of one match and runs the
// per-frame cycle.
type Session struct {
	entities []Entity
	player   int
	input    Input
	screen   Screen

	running   bool
	debug     bool
	drawMouse bool
	useFinger bool

	catalog []Card
	sounds  SoundPlayer
	log     zerolog.Logger
	rng     *rand.Rand

	clickMode ClickMode
	listeners []Listener

	matchID       ulid.ULID
	turn          Turn
	selectedCount int
	selected      [2]selection
	waitTimer     float32
	prevSuccess   bool
	pending       *RoundResult
	round         int
	pairs         int
	player1Score  int
	player2Score  int
	elapsed       float32
	finished      bool
}

// New creates a session with no scene. Call CreateMemoryGameScene to deal.
func New(catalog []Card, opts Options) *Session {
	s := &Session{
		player:    -1,
		running:   true,
		drawMouse: true,
		catalog:   append([]Card(nil), catalog...),
		sounds:    opts.Sounds,
		rng:       opts.Rand,
		clickMode: opts.ClickMode,
		listeners: opts.Listeners,
		turn:      Player1,
		selected:  emptySelection(),
		waitTimer: -1,
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	} else {
		s.log = zerolog.Nop()
	}
	if s.sounds == nil {
		s.sounds = silence{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// CreateMemoryGameScene resets the round and the scores, discards every
// entity, and deals two cards per catalog entry at random board positions.
// The camera is appended first so its index is known.
func (s *Session) CreateMemoryGameScene() error {
	if len(s.catalog) == 0 {
		return ErrEmptyCatalog
	}
	if 2*len(s.catalog) > len(BoardPositions) {
		return fmt.Errorf("%w: %d cards for %d positions", ErrTooManyCards, 2*len(s.catalog), len(BoardPositions))
	}
	s.turn = Player1
	s.selectedCount = 0
	s.selected = emptySelection()
	s.prevSuccess = false
	s.pending = nil
	s.waitTimer = -1
	s.player1Score = 0
	s.player2Score = 0
	s.round = 0
	s.elapsed = 0
	s.finished = false
	s.matchID = ulid.Make()
	s.entities = nil
	s.player = -1

	s.add(NewCameraEntity(Vec{}))
	s.player = 0

	// Draw without replacement from the first 2N positions.
	total := 2 * len(s.catalog)
	positions := append([]Vec(nil), BoardPositions[:total]...)
	cards := make([]*CardEntity, 0, total)
	for len(cards) < total {
		for _, card := range s.catalog {
			i := s.rng.Intn(len(positions))
			pos := positions[i]
			positions = append(positions[:i], positions[i+1:]...)
			cards = append(cards, NewCardEntity(card, pos.X, pos.Y))
		}
	}
	for _, c := range cards {
		s.add(c)
	}
	s.pairs = len(s.catalog)
	s.log.Info().Str("match", s.matchID.String()).Int("cards", len(cards)).Msg("dealt memory game")
	return nil
}

func (s *Session) add(e Entity) {
	e.setIndex(len(s.entities))
	s.entities = append(s.entities, e)
}

// Cycle advances one frame.
func (s *Session) Cycle(delta float32, in Input) {
	s.input = in
	s.useFinger = false

	if s.selectedCount == 2 {
		s.evaluate()
	}

	if len(s.entities) > 0 {
		s.elapsed += delta
	}

	if s.waitTimer < 0 {
		f := &Frame{s: s, result: s.pending}
		s.pending = nil
		for _, e := range s.entities {
			e.Tick(f, delta)
		}
		if s.prevSuccess {
			if s.turn == Player1 {
				s.player1Score++
			} else {
				s.player2Score++
			}
			s.checkWin()
		}
		s.prevSuccess = false
	} else {
		s.waitTimer -= delta
	}

	if s.screen != nil {
		s.screen.Cycle(s, in)
	}

	for _, e := range in.Events {
		switch {
		case e.Kind == EventQuit, e.Kind == EventKeyDown && e.Key == KeyEscape:
			s.Quit()
		case e.Kind == EventKeyDown && e.Key == DebugKey:
			s.debug = !s.debug
		case e.Kind == EventMouseDown && e.Button == MouseLeft:
			s.dispatchClick()
		}
	}
}

// evaluate closes a round with two picks. A miss passes the turn, a match
// keeps it with the player who made it.
func (s *Session) evaluate() {
	first, second := s.selected[0], s.selected[1]
	s.log.Info().
		Stringer("turn", s.turn).
		Str("first", first.card.Name).
		Str("second", second.card.Name).
		Msg("cards picked")

	picker := s.turn
	s.turn = s.turn.Toggle()
	s.selectedCount = 0
	s.prevSuccess = first.card.Matches(second.card)
	s.selected = emptySelection()
	s.waitTimer = WaitDuration
	if s.prevSuccess {
		s.turn = s.turn.Toggle()
	}
	s.round++

	result := RoundResult{
		Round:    s.round,
		Player:   picker,
		Outcome:  Missed,
		Cards:    [2]Card{first.card, second.card},
		Entities: [2]ulid.ULID{first.entity, second.entity},
		Next:     s.turn,
	}
	if s.prevSuccess {
		result.Outcome = Matched
	}
	s.pending = &result
	s.log.Info().Stringer("turn", s.turn).Msg("next turn")
	for _, l := range s.listeners {
		l.RoundEvaluated(result)
	}
}

func (s *Session) checkWin() {
	if s.finished || s.player1Score+s.player2Score != s.pairs {
		return
	}
	s.finished = true
	verdict := s.Verdict()
	s.log.Info().Int("player1", s.player1Score).Int("player2", s.player2Score).Msg(verdict.String())
	summary := MatchSummary{
		ID:       s.matchID,
		Player1:  s.player1Score,
		Player2:  s.player2Score,
		Rounds:   s.round,
		Verdict:  verdict,
		Elapsed:  time.Duration(float64(s.elapsed) * float64(time.Second)),
		Finished: time.Now(),
	}
	for _, l := range s.listeners {
		l.MatchFinished(summary)
	}
}

// Verdict compares the scores once every pair is found. The larger score
// wins, equal scores are a draw.
func (s *Session) Verdict() Verdict {
	if !s.MatchOver() {
		return VerdictPending
	}
	switch {
	case s.player1Score > s.player2Score:
		return VerdictPlayer1
	case s.player2Score > s.player1Score:
		return VerdictPlayer2
	}
	return VerdictDraw
}

// MatchOver reports whether every dealt pair has been found.
func (s *Session) MatchOver() bool {
	return s.pairs > 0 && s.player1Score+s.player2Score == s.pairs
}

// Player returns the camera entity.
func (s *Session) Player() (Entity, error) {
	if s.player < 0 {
		return nil, errPlayerMissing
	}
	if s.player >= len(s.entities) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoPlayer, s.player, len(s.entities))
	}
	return s.entities[s.player], nil
}

// PlaySound hands the sound to the audio collaborator. It never blocks.
func (s *Session) PlaySound(loc resource.Location) {
	s.sounds.Play(loc)
}

func (s *Session) Quit() {
	if s.running {
		s.log.Info().Msg("quitting game")
	}
	s.running = false
}

// Entities returns the collection in processing order.
func (s *Session) Entities() []Entity {
	return s.entities
}

func (s *Session) Turn() Turn                  { return s.turn }
func (s *Session) Player1Score() int           { return s.player1Score }
func (s *Session) Player2Score() int           { return s.player2Score }
func (s *Session) SelectedCount() int          { return s.selectedCount }
func (s *Session) WaitTimer() float32          { return s.waitTimer }
func (s *Session) PrevSuccess() bool           { return s.prevSuccess }
func (s *Session) Running() bool               { return s.running }
func (s *Session) Debug() bool                 { return s.debug }
func (s *Session) UseFinger() bool             { return s.useFinger }
func (s *Session) Pairs() int                  { return s.pairs }
func (s *Session) Round() int                  { return s.round }
func (s *Session) MatchID() ulid.ULID          { return s.matchID }
func (s *Session) Catalog() []Card             { return s.catalog }
func (s *Session) Screen() Screen              { return s.screen }
func (s *Session) SetScreen(scr Screen)        { s.screen = scr }
func (s *Session) SetDrawMouse(draw bool)      { s.drawMouse = draw }
func (s *Session) SetSounds(p SoundPlayer)     { s.sounds = p }
func (s *Session) AddListener(l Listener)      { s.listeners = append(s.listeners, l) }
func (s *Session) Logger() *zerolog.Logger     { return &s.log }
func (s *Session) SelectedCards() (Card, Card) { return s.selected[0].card, s.selected[1].card }

// Score returns the given player's pair count.
func (s *Session) Score(t Turn) int {
	if t == Player1 {
		return s.player1Score
	}
	return s.player2Score
}

// RequestFinger asks for the pointing-hand cursor for this frame.
func (s *Session) RequestFinger() {
	s.useFinger = true
}
