package game

// Turn is the player whose picks are currently being made.
type Turn int8

const (
	Player1 Turn = iota
	Player2
)

// Toggle returns the other player.
func (t Turn) Toggle() Turn {
	if t == Player1 {
		return Player2
	}
	return Player1
}

func (t Turn) Equals(other Turn) bool {
	return t == other
}

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "unknown"
}
