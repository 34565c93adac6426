// Package config loads the demo configuration from YAML and turns it into the
// functional options of the engine packages.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrUnknownMode   = errors.New("unknown rig mode")
	ErrUnknownButton = errors.New("unknown mouse button")
)

// Config is the full demo configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Rig      RigConfig      `yaml:"rig"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	MSAA   uint32 `yaml:"msaa"`
}

type EngineConfig struct {
	TickRate   float64 `yaml:"tick_rate"`
	FrameLimit float64 `yaml:"frame_limit"`
	Profiling  bool    `yaml:"profiling"`
}

// RigConfig mirrors the camera.Rig options. Angles are degrees, smoothing values are
// time constants in seconds.
type RigConfig struct {
	Mode              string     `yaml:"mode"`
	Yaw               float32    `yaml:"yaw"`
	Pitch             float32    `yaml:"pitch"`
	PitchMin          float32    `yaml:"pitch_min"`
	PitchMax          float32    `yaml:"pitch_max"`
	Arm               [3]float32 `yaml:"arm"`
	Pivot             [3]float32 `yaml:"pivot"`
	Position          [3]float32 `yaml:"position"`
	RotationSmoothing float32    `yaml:"rotation_smoothing"`
	PositionSmoothing float32    `yaml:"position_smoothing"`
}

// ControlsConfig is the hot-reloadable part of the configuration.
type ControlsConfig struct {
	RotateStep       float32 `yaml:"rotate_step"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	LookButton       string  `yaml:"look_button"`
}

type SceneConfig struct {
	GroundSize      float32       `yaml:"ground_size"`
	Columns         int           `yaml:"columns"`
	Rows            int           `yaml:"rows"`
	Spacing         float32       `yaml:"spacing"`
	GroundHeight    float32       `yaml:"ground_height"`
	RestHeight      float32       `yaml:"rest_height"`
	MoveDuration    time.Duration `yaml:"move_duration"`
	UpdateWorkers   int           `yaml:"update_workers"`
	CullingDisabled bool          `yaml:"culling_disabled"`
}

// Default returns the configuration of the orbit demo.
func Default() Config {
	controls := camera.DefaultControls()
	layout := scene.DefaultGridLayout()
	return Config{
		Window: WindowConfig{
			Title:  "oxy-rig",
			Width:  1280,
			Height: 720,
			VSync:  true,
			MSAA:   4,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Rig: RigConfig{
			Mode:              camera.ModeOrbit.String(),
			Yaw:               camera.DefaultYaw,
			Pitch:             camera.DefaultPitch,
			PitchMin:          camera.DefaultMinPitch,
			PitchMax:          camera.DefaultMaxPitch,
			Arm:               [3]float32{0, 0, camera.DefaultArmLength},
			RotationSmoothing: camera.DefaultRotationSmoothing,
			PositionSmoothing: camera.DefaultPositionSmoothing,
		},
		Controls: ControlsConfig{
			RotateStep:       controls.RotateStep,
			MouseSensitivity: controls.MouseSensitivity,
			MoveSpeed:        controls.MoveSpeed,
			SprintMultiplier: controls.SprintMultiplier,
			LookButton:       "right",
		},
		Scene: SceneConfig{
			GroundSize:    layout.GroundSize,
			Columns:       layout.Columns,
			Rows:          layout.Rows,
			Spacing:       layout.Spacing,
			RestHeight:    0.5,
			MoveDuration:  scene.DefaultMoveDuration,
			UpdateWorkers: 1,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file cannot be read, parsed, or fails validation
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// An explicitly empty string means "use the default".
	def := Default()
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, def.Window.Title)
	cfg.Rig.Mode = common.Coalesce(cfg.Rig.Mode, def.Rig.Mode)
	cfg.Controls.LookButton = common.Coalesce(cfg.Controls.LookButton, def.Controls.LookButton)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// negative reports whether f is below zero or not a finite number.
func negative(f float32) bool {
	return !common.Finite(f) || f < 0
}

func outOfRange(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrOutOfRange, field, v)
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, outOfRange("window.width/height", fmt.Sprintf("%dx%d", c.Window.Width, c.Window.Height)))
	}
	switch c.Window.MSAA {
	case 1, 4, 8, 16:
	default:
		errs = append(errs, outOfRange("window.msaa", c.Window.MSAA))
	}

	if c.Engine.TickRate <= 0 || math.IsNaN(c.Engine.TickRate) || math.IsInf(c.Engine.TickRate, 0) {
		errs = append(errs, outOfRange("engine.tick_rate", c.Engine.TickRate))
	}
	if c.Engine.FrameLimit < 0 || math.IsNaN(c.Engine.FrameLimit) || math.IsInf(c.Engine.FrameLimit, 0) {
		errs = append(errs, outOfRange("engine.frame_limit", c.Engine.FrameLimit))
	}

	if _, err := c.Rig.mode(); err != nil {
		errs = append(errs, err)
	}
	if !common.Finite(c.Rig.Yaw) || !common.Finite(c.Rig.Pitch) {
		errs = append(errs, outOfRange("rig.yaw/pitch", fmt.Sprintf("%v/%v", c.Rig.Yaw, c.Rig.Pitch)))
	}
	if !common.Finite(c.Rig.PitchMin) || !common.Finite(c.Rig.PitchMax) || c.Rig.PitchMin < -90 || c.Rig.PitchMax > 90 || c.Rig.PitchMin > c.Rig.PitchMax {
		errs = append(errs, outOfRange("rig.pitch_min/pitch_max", fmt.Sprintf("[%v, %v]", c.Rig.PitchMin, c.Rig.PitchMax)))
	}
	if !common.FiniteVec3(c.Rig.Arm) {
		errs = append(errs, outOfRange("rig.arm", c.Rig.Arm))
	}
	if !common.FiniteVec3(c.Rig.Pivot) {
		errs = append(errs, outOfRange("rig.pivot", c.Rig.Pivot))
	}
	if !common.FiniteVec3(c.Rig.Position) {
		errs = append(errs, outOfRange("rig.position", c.Rig.Position))
	}
	if negative(c.Rig.RotationSmoothing) {
		errs = append(errs, outOfRange("rig.rotation_smoothing", c.Rig.RotationSmoothing))
	}
	if negative(c.Rig.PositionSmoothing) {
		errs = append(errs, outOfRange("rig.position_smoothing", c.Rig.PositionSmoothing))
	}

	if err := c.Controls.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Scene.GroundSize <= 0 || !common.Finite(c.Scene.GroundSize) {
		errs = append(errs, outOfRange("scene.ground_size", c.Scene.GroundSize))
	}
	if !common.Finite(c.Scene.Spacing) || !common.Finite(c.Scene.GroundHeight) || !common.Finite(c.Scene.RestHeight) {
		errs = append(errs, outOfRange("scene.spacing/ground_height/rest_height",
			fmt.Sprintf("%v/%v/%v", c.Scene.Spacing, c.Scene.GroundHeight, c.Scene.RestHeight)))
	}
	if c.Scene.Columns < 0 || c.Scene.Rows < 0 {
		errs = append(errs, outOfRange("scene.columns/rows", fmt.Sprintf("%dx%d", c.Scene.Columns, c.Scene.Rows)))
	}
	if c.Scene.MoveDuration < 0 {
		errs = append(errs, outOfRange("scene.move_duration", c.Scene.MoveDuration))
	}
	if c.Scene.UpdateWorkers < 1 {
		errs = append(errs, outOfRange("scene.update_workers", c.Scene.UpdateWorkers))
	}

	return errors.Join(errs...)
}

// Validate checks the controls section on its own; hot reload applies nothing else.
func (c ControlsConfig) Validate() error {
	var errs []error
	if negative(c.RotateStep) {
		errs = append(errs, outOfRange("controls.rotate_step", c.RotateStep))
	}
	if negative(c.MouseSensitivity) {
		errs = append(errs, outOfRange("controls.mouse_sensitivity", c.MouseSensitivity))
	}
	if negative(c.MoveSpeed) {
		errs = append(errs, outOfRange("controls.move_speed", c.MoveSpeed))
	}
	if negative(c.SprintMultiplier) || c.SprintMultiplier < 1 {
		errs = append(errs, outOfRange("controls.sprint_multiplier", c.SprintMultiplier))
	}
	if _, err := c.lookButton(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (r RigConfig) mode() (camera.Mode, error) {
	switch strings.ToLower(r.Mode) {
	case camera.ModeOrbit.String():
		return camera.ModeOrbit, nil
	case camera.ModeFly.String():
		return camera.ModeFly, nil
	}
	return camera.ModeOrbit, fmt.Errorf("%w: rig.mode = %q", ErrUnknownMode, r.Mode)
}

// Options converts the section into rig options. Call on a validated Config.
//
// Returns:
//   - []camera.RigOption: options for camera.NewRig
func (r RigConfig) Options() []camera.RigOption {
	mode, _ := r.mode()
	return []camera.RigOption{
		camera.WithMode(mode),
		camera.WithPitchBounds(r.PitchMin, r.PitchMax),
		camera.WithYawPitch(r.Yaw, r.Pitch),
		camera.WithArm(mgl32.Vec3(r.Arm)),
		camera.WithPivot(mgl32.Vec3(r.Pivot)),
		camera.WithPosition(mgl32.Vec3(r.Position)),
		camera.WithRotationSmoothing(r.RotationSmoothing),
		camera.WithPositionSmoothing(r.PositionSmoothing),
	}
}

func (c ControlsConfig) lookButton() (common.MouseButton, error) {
	switch strings.ToLower(c.LookButton) {
	case "left":
		return common.MouseButtonLeft, nil
	case "right":
		return common.MouseButtonRight, nil
	case "middle":
		return common.MouseButtonMiddle, nil
	}
	return common.MouseButtonRight, fmt.Errorf("%w: controls.look_button = %q", ErrUnknownButton, c.LookButton)
}

// Controls returns the controller mapping values.
func (c ControlsConfig) Controls() camera.Controls {
	return camera.Controls{
		RotateStep:       c.RotateStep,
		MouseSensitivity: c.MouseSensitivity,
		MoveSpeed:        c.MoveSpeed,
		SprintMultiplier: c.SprintMultiplier,
	}
}

// Apply pushes the section into a running controller: mapping values and the look button.
// Call on a validated ControlsConfig.
//
// Parameters:
//   - ctrl: the controller to update
func (c ControlsConfig) Apply(ctrl camera.Controller) {
	btn, _ := c.lookButton()
	ctrl.SetControls(c.Controls())
	ctrl.SetLookButton(btn)
}

// Options converts the section into controller options. Call on a validated Config.
//
// Returns:
//   - []camera.ControllerOption: options for camera.NewController
func (c ControlsConfig) Options() []camera.ControllerOption {
	btn, _ := c.lookButton()
	return []camera.ControllerOption{
		camera.WithControls(c.Controls()),
		camera.WithLookButton(btn),
	}
}

// Layout returns the demo grid described by the section.
func (s SceneConfig) Layout() scene.GridLayout {
	return scene.GridLayout{
		GroundSize: s.GroundSize,
		Columns:    s.Columns,
		Rows:       s.Rows,
		Spacing:    s.Spacing,
	}
}

// Options converts the section into scene options.
//
// Returns:
//   - []scene.SceneBuilderOption: options for scene.NewScene
func (s SceneConfig) Options() []scene.SceneBuilderOption {
	return []scene.SceneBuilderOption{
		scene.WithGroundHeight(s.GroundHeight),
		scene.WithRestHeight(s.RestHeight),
		scene.WithMoveDuration(s.MoveDuration),
		scene.WithUpdateWorkers(s.UpdateWorkers),
		scene.WithCullingDisabled(s.CullingDisabled),
	}
}
