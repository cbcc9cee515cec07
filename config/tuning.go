package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DisplaySpec is the logical resolution the game draws at before scaling to
// the window.
type DisplaySpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

type PlayerSpec struct {
	SpawnX                 float64 `yaml:"spawn_x"`
	SpawnY                 float64 `yaml:"spawn_y"`
	Width                  float64 `yaml:"width"`
	Height                 float64 `yaml:"height"`
	AnimOffsetX            float64 `yaml:"anim_offset_x"`
	AnimOffsetY            float64 `yaml:"anim_offset_y"`
	FallLimit              float64 `yaml:"fall_limit"`
	JumpAirTime            int     `yaml:"jump_air_time"`
	TerminalTimerStart     int     `yaml:"terminal_timer_start"`
	TerminalTimerThreshold int     `yaml:"terminal_timer_threshold"`
}

type CameraSpec struct {
	ScrollDivisor float64 `yaml:"scroll_divisor"`
}

type AnimationSpec struct {
	Duration int  `yaml:"duration"`
	Loop     bool `yaml:"loop"`
}

// Tuning holds every gameplay constant. The embedded tuning.yaml reproduces
// the shipped game; a file passed to Load overrides individual fields.
type Tuning struct {
	Window     WindowSpec               `yaml:"window"`
	Display    DisplaySpec              `yaml:"display"`
	TPS        int                      `yaml:"tps"`
	Physics    PhysicsSpec              `yaml:"physics"`
	Player     PlayerSpec               `yaml:"player"`
	Camera     CameraSpec               `yaml:"camera"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

// Default returns the embedded tuning.
func Default() *Tuning {
	t, err := parse(defaultTuning, nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded tuning.yaml: %v", err))
	}
	return t
}

// Load reads the tuning file at path on top of the embedded defaults. An
// empty path returns the defaults.
func Load(path string) (*Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	t, err := parse(data, Default())
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

func parse(data []byte, base *Tuning) (*Tuning, error) {
	t := base
	if t == nil {
		t = &Tuning{}
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects values the game loop cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Window.Width <= 0 || t.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", t.Window.Width, t.Window.Height)
	case t.Display.Width <= 0 || t.Display.Height <= 0:
		return fmt.Errorf("display size %dx%d must be positive", t.Display.Width, t.Display.Height)
	case t.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", t.TPS)
	case t.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("max_fall_speed %v must be positive", t.Physics.MaxFallSpeed)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("player size %vx%v must be positive", t.Player.Width, t.Player.Height)
	case t.Player.TerminalTimerThreshold <= t.Player.TerminalTimerStart:
		return fmt.Errorf("terminal_timer_threshold %d must exceed terminal_timer_start %d",
			t.Player.TerminalTimerThreshold, t.Player.TerminalTimerStart)
	case t.Camera.ScrollDivisor <= 0:
		return fmt.Errorf("scroll_divisor %v must be positive", t.Camera.ScrollDivisor)
	}
	for name, a := range t.Animations {
		if a.Duration <= 0 {
			return fmt.Errorf("animation %q duration %d must be positive", name, a.Duration)
		}
	}
	return nil
}

// Animation returns the timing for an action, falling back to a 5 tick
// looping animation for actions the file does not mention.
func (t *Tuning) Animation(action string) AnimationSpec {
	if a, ok := t.Animations[action]; ok {
		return a
	}
	return AnimationSpec{Duration: 5, Loop: true}
}
