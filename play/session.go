package play

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/assets"
	"github.com/milk9111/obstaclecourse/common"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/levels"
	"github.com/milk9111/obstaclecourse/obj"
	"github.com/milk9111/obstaclecourse/tilemap"
)

// ErrQuit is returned by Update when the player chose to quit.
var ErrQuit = errors.New("play: quit")

// BannerX and BannerY place the end-of-level banner on the display.
const (
	BannerX = 35
	BannerY = 0
)

// Screen is the top-level mode of a session.
type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenGameOver
	ScreenWinner
)

func (s Screen) String() string {
	switch s {
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	case ScreenWinner:
		return "winner"
	default:
		return "unknown"
	}
}

// Controls is the input for one tick.
type Controls struct {
	Intent    cp.Vector
	Jump      bool
	PlayAgain bool
	Quit      bool
}

type Options struct {
	// LevelPath is the level file on disk. Empty plays the embedded level.
	LevelPath string
	Tuning    *config.Tuning
	Assets    *assets.Registry
	Logger    *log.Logger
}

// Session runs one player through one level: play until the death or win
// animation has finished, then wait on the end screen for play again or quit.
type Session struct {
	levelPath string
	tuning    *config.Tuning
	pending   *config.Tuning
	assets    *assets.Registry
	logger    *log.Logger

	level  *tilemap.Tilemap
	player *obj.Player
	camera *obj.Camera
	screen Screen
	state  obj.PlayerState
}

func New(opts Options) (*Session, error) {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.Default()
	}
	reg := opts.Assets
	if reg == nil {
		reg = assets.Placeholders(tuning)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		levelPath: opts.LevelPath,
		tuning:    tuning,
		assets:    reg,
		logger:    logger,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Screen() Screen           { return s.screen }
func (s *Session) Player() *obj.Player      { return s.player }
func (s *Session) Camera() *obj.Camera      { return s.camera }
func (s *Session) Level() *tilemap.Tilemap  { return s.level }
func (s *Session) Tuning() *config.Tuning   { return s.tuning }
func (s *Session) LevelPath() string        { return s.levelPath }
func (s *Session) Assets() *assets.Registry { return s.assets }

// SetTuning stages t to take effect on the next Reset.
func (s *Session) SetTuning(t *config.Tuning) {
	s.pending = t
}

// Reset reloads the level, spawns a fresh player and recenters the camera.
func (s *Session) Reset() error {
	m, err := levels.Load(s.levelPath)
	if err != nil {
		return err
	}
	if s.pending != nil {
		s.tuning, s.pending = s.pending, nil
		s.player, s.camera = nil, nil
		s.logger.Info("tuning applied")
	}
	s.level = m
	s.spawn()
	s.logger.Info("level loaded", "path", s.levelName(), "tiles", m.Len(), "offgrid", len(m.Offgrid()))
	return nil
}

// ReloadLevel re-reads the level file after it changed on disk. A level that
// fails to load leaves the current one in play.
func (s *Session) ReloadLevel() error {
	m, err := levels.Load(s.levelPath)
	if err != nil {
		return err
	}
	s.level = m
	s.spawn()
	s.logger.Info("level reloaded", "path", s.levelName(), "tiles", m.Len())
	return nil
}

// spawn puts the player and camera back at the start. They are rebuilt only
// when none exist yet or the tuning changed.
func (s *Session) spawn() {
	t := s.tuning
	if s.player == nil {
		s.player = obj.NewPlayer(t.Player, t.Physics, s.assets)
	} else {
		s.player.Reset()
	}
	if s.camera == nil {
		s.camera = obj.NewCamera(t.Display.Width, t.Display.Height, t.Camera.ScrollDivisor)
	} else {
		s.camera.Reset()
	}
	s.screen = ScreenPlaying
	s.state = obj.StateAlive
}

func (s *Session) levelName() string {
	if s.levelPath == "" {
		return "embedded:" + levels.Default
	}
	return s.levelPath
}

// Update advances one tick. It returns ErrQuit once the player quits from an
// end screen.
func (s *Session) Update(c Controls) error {
	if s.screen != ScreenPlaying {
		switch {
		case c.Quit:
			s.logger.Info("quit", "screen", s.screen)
			return ErrQuit
		case c.PlayAgain:
			s.logger.Info("play again", "screen", s.screen)
			return s.Reset()
		}
		return nil
	}

	s.camera.Update(s.player.Rect())
	s.player.Update(s.level, c.Intent)
	if c.Jump {
		s.player.Jump()
	}

	if st := s.player.State(); st != s.state {
		s.logger.Info("player state", "from", s.state, "to", st, "x", s.player.Body.Pos.X, "y", s.player.Body.Pos.Y)
		s.state = st
	}
	switch {
	case s.player.DeathConfirmed():
		s.screen = ScreenGameOver
		s.logger.Info("game over")
	case s.player.WinConfirmed():
		s.screen = ScreenWinner
		s.logger.Info("level complete")
	}
	return nil
}

// Draw renders the current screen onto c.
func (s *Session) Draw(c common.Canvas) {
	c.DrawImage(s.assets.Background, 0, 0, false)
	switch s.screen {
	case ScreenPlaying:
		off := s.camera.Offset()
		s.level.Draw(c, s.assets, off)
		s.player.Draw(c, off)
	case ScreenGameOver:
		c.DrawImage(s.assets.GameOver, BannerX, BannerY, false)
	case ScreenWinner:
		c.DrawImage(s.assets.GameWinner, BannerX, BannerY, false)
	}
}
