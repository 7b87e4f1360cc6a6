package screens

import "github.com/BurritoBandit28/Memory-Game/game"

// MainMenu is shown at start-up, before any cards are dealt.
type MainMenu struct {
	Base
}

func NewMainMenu() *MainMenu {
	m := &MainMenu{}
	m.Add(NewPlay(game.AlignLeft, 60, 0), 0)
	m.Add(NewQuit(game.AlignLeft, 60, -40), 0)
	return m
}
