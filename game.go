package main

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/play"
	"github.com/milk9111/obstaclecourse/render"
)

type Game struct {
	session *play.Session
	input   *Input
	cache   *render.Cache
	end     *endScreen
	logger  *log.Logger

	watcher    *config.Watcher
	levelFile  string
	configFile string

	// clicked carries end screen button presses into the next session update.
	clicked play.Controls
}

// NewGame wraps a session for ebiten. When watcher is set, changes to the
// session's level file reload the level and changes to configPath are applied
// on the next reset.
func NewGame(session *play.Session, watcher *config.Watcher, configPath string, logger *log.Logger) *Game {
	g := &Game{
		session: session,
		input:   NewInput(),
		cache:   render.NewCache(),
		logger:  logger,
		watcher: watcher,
	}
	g.end = newEndScreen(
		func() { g.clicked.PlayAgain = true },
		func() { g.clicked.Quit = true },
	)
	if p := session.LevelPath(); p != "" {
		g.levelFile, _ = filepath.Abs(p)
	}
	if configPath != "" {
		g.configFile, _ = filepath.Abs(configPath)
	}
	return g
}

func (g *Game) Update() error {
	if err := g.pollWatcher(); err != nil {
		return err
	}

	g.input.Update()
	c := play.Controls{
		Intent:    g.input.Intent(),
		Jump:      g.input.JumpPressed,
		PlayAgain: g.input.PlayAgain,
		Quit:      g.input.Quit,
	}
	if g.session.Screen() != play.ScreenPlaying {
		g.end.Update()
		c.PlayAgain = c.PlayAgain || g.clicked.PlayAgain
		c.Quit = c.Quit || g.clicked.Quit
	}
	g.clicked = play.Controls{}

	if err := g.session.Update(c); err != nil {
		if errors.Is(err, play.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// pollWatcher drains pending file changes without blocking.
func (g *Game) pollWatcher() error {
	if g.watcher == nil {
		return nil
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("file watcher", "error", err)
			}
		default:
		}

		path, ok := g.watcher.Poll()
		if !ok {
			return nil
		}
		switch path {
		case g.levelFile:
			if err := g.session.ReloadLevel(); err != nil {
				g.logger.Warn("level reload failed, keeping current level", "path", path, "error", err)
			}
		case g.configFile:
			t, err := config.Load(path)
			if err != nil {
				g.logger.Warn("tuning reload failed", "path", path, "error", err)
				continue
			}
			g.session.SetTuning(t)
			g.logger.Info("tuning changed, applies on next reset", "path", path)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(render.NewCanvas(screen, g.cache))
	if g.session.Screen() != play.ScreenPlaying {
		g.end.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.session.Tuning().Display
	return d.Width, d.Height
}
