/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/render"
	"github.com/BurritoBandit28/Memory-Game/sound"
	"github.com/BurritoBandit28/Memory-Game/spectate"
	"github.com/BurritoBandit28/Memory-Game/ui"
	"github.com/BurritoBandit28/Memory-Game/ui/screens"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var listeners []game.Listener
		if cfg.SpectateAddr != "" {
			broker := spectate.NewMemoryBroker(log.Logger)
			feed := spectate.NewFeed(broker, log.Logger)
			listeners = append(listeners, feed)
			go feed.Run(ctx)
			go func() {
				if err := spectate.Serve(ctx, cfg.SpectateAddr, broker, log.Logger); err != nil {
					log.Error().Err(err).Msg("spectator feed stopped")
				}
			}()
		}

		session, d, closeLedger, err := newSession(game.Options{Listeners: listeners})
		if err != nil {
			return err
		}
		defer closeLedger()

		assets := os.DirFS(cfg.Assets)
		sounds, err := sound.NewManager(audio.NewContext(sound.SampleRate), assets, d.Sounds, log.Logger)
		if err != nil {
			return err
		}
		sounds.Preload()
		session.SetSounds(sounds)

		renderer, err := render.Load(assets, d.Textures, log.Logger)
		if err != nil {
			return err
		}
		session.SetScreen(screens.NewMainMenu())

		log.Info().Str("deck", d.Name).Int("cards", len(d.Cards)).Msg("starting game")
		return ui.Run(&ui.Program{
			Session:  session,
			Renderer: renderer,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Log:      log.Logger,
		}, "Memory Game", cfg.Scale)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
