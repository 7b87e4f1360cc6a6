package game

import "testing"

func TestTurn(t *testing.T) {
	if Player1.Toggle() != Player2 || Player2.Toggle() != Player1 {
		t.Error("toggle does not alternate")
	}
	if !Player1.Toggle().Toggle().Equals(Player1) {
		t.Error("double toggle is not the identity")
	}
	if Player1.Equals(Player2) {
		t.Error("distinct turns compare equal")
	}
	if Player1.String() != "Player 1" || Player2.String() != "Player 2" {
		t.Errorf("unexpected names %s, %s", Player1, Player2)
	}
}
