package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/obstaclecourse/assets"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/play"
)

var (
	flagLevel  string
	flagAssets string
	flagConfig string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level",
	Long: `Open the game window and play a level.

Without --level the embedded level is played. Without --assets the game draws
generated placeholder art. An asset directory uses this layout:

  tiles/<kind>/*.png                 one image per variant, in file name order
  entities/player/<action>/*.png     animation frames for idle, run, jump,
                                     death and winner
  background.png, game_over.png, game_winner.png

Pure black pixels are drawn transparent.

Examples:
  obstaclecourse play
  obstaclecourse play --level ./map.json --watch
  obstaclecourse play --assets ./data/images --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Level file to play (default: embedded level)")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (default: generated placeholder art)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Tuning YAML overriding the built-in values")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level and tuning files when they change")
}

func runPlay(cmd *cobra.Command, args []string) error {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var reg *assets.Registry
	if flagAssets != "" {
		if reg, err = assets.LoadDir(flagAssets, tuning); err != nil {
			return err
		}
		logger.Info("assets loaded", "dir", flagAssets)
	} else {
		reg = assets.Placeholders(tuning)
		logger.Debug("using placeholder art")
	}

	session, err := play.New(play.Options{
		LevelPath: flagLevel,
		Tuning:    tuning,
		Assets:    reg,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		if flagLevel == "" && flagConfig == "" {
			logger.Warn("--watch has nothing to watch without --level or --config")
		} else {
			watcher, err = config.NewWatcher(flagLevel, flagConfig)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer watcher.Close()
			logger.Info("watching for changes", "level", flagLevel, "config", flagConfig)
		}
	}

	ebiten.SetWindowSize(tuning.Window.Width, tuning.Window.Height)
	ebiten.SetWindowTitle(tuning.Window.Title)
	ebiten.SetTPS(tuning.TPS)

	game := NewGame(session, watcher, flagConfig, logger)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}
