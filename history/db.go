package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/BurritoBandit28/Memory-Game/game"
)

type Repository struct {
	Db *sql.DB
}

// Open opens the sqlite ledger at path and creates its tables.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	repo, err := NewRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			player1 INTEGER NOT NULL,
			player2 INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			verdict TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS match_rounds (
			match_id TEXT NOT NULL REFERENCES matches(id),
			number INTEGER NOT NULL,
			player TEXT NOT NULL,
			matched INTEGER NOT NULL,
			first_card TEXT NOT NULL,
			second_card TEXT NOT NULL,
			PRIMARY KEY (match_id, number)
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating tables: %w", err)
	}
	return &Repository{Db: db}, nil
}

func (repo *Repository) Close() error {
	return repo.Db.Close()
}

type Match struct {
	ID       string
	Player1  int
	Player2  int
	Rounds   int
	Verdict  string
	Elapsed  time.Duration
	Finished time.Time
}

type Round struct {
	Number  int
	Player  string
	Matched bool
	First   string
	Second  string
}

// AddMatch stores a finished match together with its rounds.
func (repo *Repository) AddMatch(m game.MatchSummary, rounds []game.RoundResult) error {
	tx, err := repo.Db.Begin()
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO matches(id, player1, player2, rounds, verdict, elapsed_ms, finished_at) values(?, ?, ?, ?, ?, ?, ?)",
		m.ID.String(), m.Player1, m.Player2, m.Rounds, m.Verdict.String(), m.Elapsed.Milliseconds(), m.Finished.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	for _, r := range rounds {
		_, err = tx.Exec(
			"INSERT INTO match_rounds(match_id, number, player, matched, first_card, second_card) values(?, ?, ?, ?, ?, ?)",
			m.ID.String(), r.Round, r.Player.String(), r.Outcome == game.Matched, r.Cards[0].Name, r.Cards[1].Name,
		)
		if err != nil {
			return fmt.Errorf("error in db execution: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}

// Recent returns up to limit matches, newest first.
func (repo *Repository) Recent(limit int) ([]Match, error) {
	rows, err := repo.Db.Query(
		"SELECT id, player1, player2, rounds, verdict, elapsed_ms, finished_at FROM matches ORDER BY finished_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var elapsed, finished int64
		if err := rows.Scan(&m.ID, &m.Player1, &m.Player2, &m.Rounds, &m.Verdict, &elapsed, &finished); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		m.Elapsed = time.Duration(elapsed) * time.Millisecond
		m.Finished = time.UnixMilli(finished)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (repo *Repository) Rounds(matchID string) ([]Round, error) {
	rows, err := repo.Db.Query(
		"SELECT number, player, matched, first_card, second_card FROM match_rounds WHERE match_id = ? ORDER BY number",
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.Number, &r.Player, &r.Matched, &r.First, &r.Second); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// Recorder collects the rounds of the running match and hands the finished
// match to a writer goroutine, so the frame loop never waits on sqlite.
type Recorder struct {
	repo   *Repository
	log    zerolog.Logger
	rounds []game.RoundResult

	queue  chan record
	done   chan struct{}
	closed bool
}

type record struct {
	match  game.MatchSummary
	rounds []game.RoundResult
}

func NewRecorder(repo *Repository, log zerolog.Logger) *Recorder {
	r := &Recorder{
		repo:  repo,
		log:   log,
		queue: make(chan record, 16),
		done:  make(chan struct{}),
	}
	go r.write()
	return r
}

func (r *Recorder) write() {
	defer close(r.done)
	for rec := range r.queue {
		id := rec.match.ID.String()
		if err := r.repo.AddMatch(rec.match, rec.rounds); err != nil {
			r.log.Error().Err(err).Str("match", id).Msg("failed to record match")
			continue
		}
		r.log.Info().Str("match", id).Msg("recorded match")
	}
}

// Close waits for queued matches to be written. Call it from the frame
// goroutine once the session has stopped.
func (r *Recorder) Close() {
	if r.closed {
		return
	}
	r.closed = true
	close(r.queue)
	<-r.done
}

func (r *Recorder) RoundEvaluated(res game.RoundResult) {
	if res.Round == 1 {
		r.rounds = r.rounds[:0]
	}
	r.rounds = append(r.rounds, res)
}

func (r *Recorder) MatchFinished(m game.MatchSummary) {
	rounds := append([]game.RoundResult(nil), r.rounds...)
	r.rounds = r.rounds[:0]
	if r.closed {
		r.log.Warn().Str("match", m.ID.String()).Msg("recorder closed, match not recorded")
		return
	}
	select {
	case r.queue <- record{match: m, rounds: rounds}:
	default:
		r.log.Error().Str("match", m.ID.String()).Msg("ledger backlog full, match not recorded")
	}
}
