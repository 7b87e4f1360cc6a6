package screens

import (
	"image"
	"math/rand"
	"testing"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

var view = image.Pt(480, 270)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	var catalog []game.Card
	for _, n := range []string{"apple", "banana", "cherry", "grape", "lemon", "lime", "melon", "orange", "pear"} {
		catalog = append(catalog, game.NewCard(n, resource.Game("cards/"+n+".json"), resource.Game("cards/"+n+".png")))
	}
	s := game.New(catalog, game.Options{Rand: rand.New(rand.NewSource(3))})
	s.SetScreen(NewMainMenu())
	return s
}

// over returns a point inside the widget's bounds.
func over(w game.Widget) image.Point {
	return w.Placement().Resolve(view).Add(image.Pt(2, 2))
}

func clickOn(s *game.Session, w game.Widget) {
	at := over(w)
	s.Cycle(0, game.Input{Events: []game.Event{game.MouseDown(game.MouseLeft, at.X, at.Y)}, Mouse: at, View: view})
}

func finish(t *testing.T, s *game.Session) {
	t.Helper()
	bot := game.NewAutoplayer(rand.New(rand.NewSource(5)), 1)
	for i := 0; !s.MatchOver(); i++ {
		if i > 20000 {
			t.Fatal("match did not finish")
		}
		s.Cycle(0.25, bot.Next(s, view))
	}
}

func TestMainMenu(t *testing.T) {
	s := newSession(t)
	menu := s.Screen().(*MainMenu)
	play := menu.Widgets()[0][0]
	quit := menu.Widgets()[0][1]

	at := over(play)
	s.Cycle(0, game.Input{Mouse: at, View: view})
	if !play.Selected() || quit.Selected() {
		t.Fatalf("hit-testing failed: play=%v quit=%v", play.Selected(), quit.Selected())
	}
	if !s.UseFinger() {
		t.Error("expected the finger over a clickable widget")
	}
	if play.Appearance(s) != play.(*Button).hovered {
		t.Error("hovered play button should use its second row")
	}

	clickOn(s, play)
	if _, ok := s.Screen().(*HUD); !ok {
		t.Fatalf("expected the HUD after play, got %T", s.Screen())
	}
	if len(s.Entities()) != 19 {
		t.Errorf("expected a dealt board, got %d entities", len(s.Entities()))
	}
	if !s.Running() {
		t.Error("play stopped the game")
	}
}

func TestMainMenuQuit(t *testing.T) {
	s := newSession(t)
	clickOn(s, s.Screen().Widgets()[0][1])
	if s.Running() {
		t.Error("quit did not stop the game")
	}
}

func TestEndScreenHiddenDuringMatch(t *testing.T) {
	s := newSession(t)
	clickOn(s, s.Screen().Widgets()[0][0])
	hud := s.Screen().(*HUD)
	id := s.MatchID()

	for _, b := range []*Button{hud.PlayAgain, hud.EndQuit} {
		clickOn(s, b)
		if b.Appearance(s).Resource != resource.Empty() {
			t.Errorf("%s visible during the match", b.Name)
		}
		if s.UseFinger() {
			t.Errorf("finger shown over hidden %s", b.Name)
		}
	}
	if !s.Running() || s.MatchID() != id {
		t.Error("hidden end screen buttons reacted to clicks")
	}
	for _, c := range hud.Crowns {
		if c.Appearance(s).Resource != resource.Empty() {
			t.Errorf("crown for %v shown during the match", c.Player)
		}
	}
}

func TestEndScreen(t *testing.T) {
	s := newSession(t)
	clickOn(s, s.Screen().Widgets()[0][0])
	hud := s.Screen().(*HUD)
	finish(t, s)

	winner, ok := s.Verdict().Winner()
	if !ok {
		t.Fatalf("expected a winner, got %v", s.Verdict())
	}
	for _, c := range hud.Crowns {
		shown := c.Appearance(s).Resource == crown.Resource
		if shown != (c.Player == winner) {
			t.Errorf("crown for %v shown=%v, winner %v", c.Player, shown, winner)
		}
	}
	for _, b := range hud.Badges {
		if got := len(b.Decorations(s, image.Point{})); got != s.Score(b.Player) {
			t.Errorf("%v: expected %d pips, got %d", b.Player, s.Score(b.Player), got)
		}
	}

	id := s.MatchID()
	clickOn(s, hud.PlayAgain)
	if s.MatchID() == id {
		t.Fatal("play again did not start a new match")
	}
	if s.Player1Score() != 0 || s.Player2Score() != 0 {
		t.Error("scores not reset")
	}
	if s.Screen() == game.Screen(hud) {
		t.Error("expected a fresh HUD")
	}

	finish(t, s)
	clickOn(s, s.Screen().(*HUD).EndQuit)
	if s.Running() {
		t.Error("end screen quit did not stop the game")
	}
}

func TestBadgeHighlight(t *testing.T) {
	s := newSession(t)
	clickOn(s, s.Screen().Widgets()[0][0])
	hud := s.Screen().(*HUD)
	p1, p2 := hud.Badges[0], hud.Badges[1]

	if !p1.Active(s) || p2.Active(s) {
		t.Fatal("player 1 should start lit")
	}

	// Pick two cards with different names.
	var first, second *game.CardEntity
	for _, e := range s.Entities() {
		c, ok := e.(*game.CardEntity)
		if !ok {
			continue
		}
		if first == nil {
			first = c
		} else if second == nil && c.Card().Name != first.Card().Name {
			second = c
		}
	}
	for _, c := range []*game.CardEntity{first, second} {
		at := game.Project(c.Base(), game.Vec{}, view)
		s.Cycle(0, game.Input{Events: []game.Event{game.MouseDown(game.MouseLeft, at.X, at.Y)}, Mouse: at, View: view})
	}
	s.Cycle(0, game.Input{View: view})
	if s.Turn() != game.Player2 {
		t.Fatalf("expected the turn to pass, got %v", s.Turn())
	}
	if !p1.Active(s) || p2.Active(s) {
		t.Error("the picker should stay lit during the pause")
	}
	if p1.Appearance(s) != p1.lit || p2.Appearance(s) != p2.dim {
		t.Error("badge appearance does not follow the highlight")
	}

	for s.WaitTimer() >= 0 {
		s.Cycle(0.5, game.Input{View: view})
	}
	if p1.Active(s) || !p2.Active(s) {
		t.Error("player 2 should be lit after the pause")
	}
}

func TestBaseAddGrowsRows(t *testing.T) {
	var b Base
	b.Add(NewCrown(game.AlignLeft, 0, 0, game.Player1), 2)
	if len(b.Widgets()) != 3 || len(b.Widgets()[2]) != 1 {
		t.Errorf("unexpected rows %v", b.Widgets())
	}
}

func TestDrawHidesCrowns(t *testing.T) {
	var catalog []game.Card
	for _, n := range []string{"apple", "banana", "cherry", "grape"} {
		catalog = append(catalog, game.NewCard(n, resource.Game("cards/"+n+".json"), resource.Game("cards/"+n+".png")))
	}
	s := game.New(catalog, game.Options{Rand: rand.New(rand.NewSource(9))})
	s.SetScreen(NewMainMenu())
	clickOn(s, s.Screen().Widgets()[0][0])
	hud := s.Screen().(*HUD)

	pairs := make(map[string][]*game.CardEntity)
	for _, e := range s.Entities() {
		if c, ok := e.(*game.CardEntity); ok {
			pairs[c.Card().Name] = append(pairs[c.Card().Name], c)
		}
	}
	pick := func(a, b *game.CardEntity) {
		for _, c := range []*game.CardEntity{a, b} {
			at := game.Project(c.Base(), game.Vec{}, view)
			s.Cycle(0, game.Input{Events: []game.Event{game.MouseDown(game.MouseLeft, at.X, at.Y)}, Mouse: at, View: view})
		}
		for s.SelectedCount() > 0 || s.WaitTimer() >= 0 {
			s.Cycle(0.5, game.Input{View: view})
		}
		s.Cycle(0.5, game.Input{View: view})
	}

	pick(pairs["apple"][0], pairs["apple"][1])
	pick(pairs["banana"][0], pairs["banana"][1])
	pick(pairs["cherry"][0], pairs["grape"][0])
	pick(pairs["cherry"][0], pairs["cherry"][1])
	pick(pairs["grape"][0], pairs["grape"][1])

	if s.Player1Score() != 2 || s.Player2Score() != 2 {
		t.Fatalf("expected 2-2, got %d-%d", s.Player1Score(), s.Player2Score())
	}
	if s.Verdict() != game.VerdictDraw {
		t.Fatalf("expected a draw, got %v", s.Verdict())
	}
	for _, c := range hud.Crowns {
		if c.Appearance(s).Resource != resource.Empty() {
			t.Errorf("crown for %v shown after a draw", c.Player)
		}
	}
	if !hud.PlayAgain.Clickable(s) {
		t.Error("play again should be offered after a draw")
	}
}

func TestClickFirstSkipsHiddenButton(t *testing.T) {
	s := game.New(nil, game.Options{ClickMode: game.ClickFirst})
	var scr Base
	scr.Add(NewPlayAgain(game.AlignLeft, 60, 0), 0)
	scr.Add(NewQuit(game.AlignLeft, 60, 0), 0)
	s.SetScreen(&scr)

	at := over(scr.Widgets()[0][1])
	s.Cycle(0, game.Input{Mouse: at, View: view})
	s.Cycle(0, game.Input{Events: []game.Event{game.MouseDown(game.MouseLeft, at.X, at.Y)}, Mouse: at, View: view})
	if s.Running() {
		t.Error("hidden play again button swallowed the click")
	}
}

func TestButtonStrip(t *testing.T) {
	b := NewQuit(game.AlignLeft, 60, -40)
	if *b.normal.Region != image.Rect(0, 0, 39, 23) {
		t.Errorf("unexpected normal cell %v", *b.normal.Region)
	}
	if *b.hovered.Region != image.Rect(0, 23, 39, 46) {
		t.Errorf("unexpected hovered cell %v", *b.hovered.Region)
	}
}
