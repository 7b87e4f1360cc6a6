package screens

import "github.com/BurritoBandit28/Memory-Game/game"

// HUD is shown over the board while a match runs and after it ends.
type HUD struct {
	Base
	Badges    [2]*PlayerBadge
	PlayAgain *Button
	EndQuit   *Button
	Crowns    [2]*Crown
}

func NewHUD() *HUD {
	h := &HUD{
		Badges: [2]*PlayerBadge{
			NewPlayerBadge(game.AlignLeft, 20, 80, game.Player1),
			NewPlayerBadge(game.AlignRight, -88, 80, game.Player2),
		},
		PlayAgain: NewPlayAgain(game.AlignLeft, 20, -110),
		EndQuit:   NewEndQuit(game.AlignRight, -75, -110),
		Crowns: [2]*Crown{
			NewCrown(game.AlignLeft, 54, 90, game.Player1),
			NewCrown(game.AlignRight, -54, 90, game.Player2),
		},
	}
	h.Add(h.Badges[0], 0)
	h.Add(h.Badges[1], 0)
	h.Add(h.PlayAgain, 0)
	h.Add(h.EndQuit, 0)
	h.Add(h.Crowns[0], 0)
	h.Add(h.Crowns[1], 0)
	return h
}
