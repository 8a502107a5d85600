package config

import (
	"errors"
	"fmt"
	"os"

	"followcam/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure of LoadConfig.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration values of the viewer
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Vehicle  VehicleConfig  `yaml:"vehicle"`
	City     CityConfig     `yaml:"city"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Debug    DebugConfig    `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"` // Updates per second, also the camera time step
}

// CameraConfig mirrors camera.Settings. FieldOfView is in degrees here.
type CameraConfig struct {
	FieldOfView      float32 `yaml:"field_of_view"`
	NearPlane        float32 `yaml:"near_plane"`
	FarPlane         float32 `yaml:"far_plane"`
	AxisDistance     float32 `yaml:"axis_distance"`
	AngleFollowSpeed float32 `yaml:"angle_follow_speed"`
	AngleThreshold   float32 `yaml:"angle_threshold"`
}

type VehicleConfig struct {
	MaxSpeed      float32 `yaml:"max_speed"`       // World units per second
	Acceleration  float32 `yaml:"acceleration"`    // Units per second squared
	Braking       float32 `yaml:"braking"`         // Units per second squared
	TurnRate      float32 `yaml:"turn_rate"`       // Radians per second at full speed
	SnapTurnAngle float32 `yaml:"snap_turn_angle"` // Degrees, applied instantly by the snap turn key
}

type CityConfig struct {
	DistanceBetweenCities float32 `yaml:"distance_between_cities"`
	BlocksPerSide         int     `yaml:"blocks_per_side"`
	BlockSize             float32 `yaml:"block_size"`
	StreetWidth           float32 `yaml:"street_width"`
	MinHeight             float32 `yaml:"min_height"`
	MaxHeight             float32 `yaml:"max_height"`
	Seed                  uint32  `yaml:"seed"`
}

// Span is the width of one city block, edge to edge.
func (c CityConfig) Span() float32 {
	n := float32(c.BlocksPerSide)
	return n*c.BlockSize + (n-1)*c.StreetWidth
}

type GraphicsConfig struct {
	Background  [3]int  `yaml:"background"`
	WireColor   [3]int  `yaml:"wire_color"`
	CarColor    [3]int  `yaml:"car_color"`
	LineWidth   float32 `yaml:"line_width"`
	GizmoLength float32 `yaml:"gizmo_length"`
}

type DebugConfig struct {
	ShowHUD       bool `yaml:"show_hud"`
	ShowBasis     bool `yaml:"show_basis"`
	WatchConfig   bool `yaml:"watch_config"`
	DetailedStats bool `yaml:"detailed_stats"` // Track the average update time
}

var GlobalConfig *Config

// Default returns the built-in configuration. Camera values are the camera
// package constants (field of view converted to degrees).
func Default() *Config {
	defaults := camera.DefaultSettings()
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "Follow Camera",
			Resizable:    false,
			TPS:          60,
		},
		Camera: CameraConfig{
			FieldOfView:      60,
			NearPlane:        defaults.NearPlane,
			FarPlane:         defaults.FarPlane,
			AxisDistance:     defaults.AxisDistance,
			AngleFollowSpeed: defaults.AngleFollowSpeed,
			AngleThreshold:   defaults.AngleThreshold,
		},
		Vehicle: VehicleConfig{
			MaxSpeed:      1500,
			Acceleration:  800,
			Braking:       2000,
			TurnRate:      1.5,
			SnapTurnAngle: 90,
		},
		City: CityConfig{
			DistanceBetweenCities: 2100,
			BlocksPerSide:         4,
			BlockSize:             400,
			StreetWidth:           100,
			MinHeight:             100,
			MaxHeight:             900,
			Seed:                  1,
		},
		Graphics: GraphicsConfig{
			Background:  [3]int{100, 149, 237}, // Cornflower blue
			WireColor:   [3]int{240, 240, 240},
			CarColor:    [3]int{220, 40, 40},
			LineWidth:   1,
			GizmoLength: 300,
		},
		Debug: DebugConfig{
			ShowHUD:       true,
			ShowBasis:     false,
			WatchConfig:   true,
			DetailedStats: true,
		},
	}
}

// LoadConfig loads the configuration from a yaml file. Missing values fall
// back to Default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// Parse decodes yaml on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Display.TPS)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("%w: field of view %v", ErrInvalidConfig, c.Camera.FieldOfView)
	case c.Camera.NearPlane <= 0 || c.Camera.FarPlane <= c.Camera.NearPlane:
		return fmt.Errorf("%w: planes near=%v far=%v", ErrInvalidConfig, c.Camera.NearPlane, c.Camera.FarPlane)
	case c.Camera.AxisDistance <= 0:
		return fmt.Errorf("%w: axis distance %v", ErrInvalidConfig, c.Camera.AxisDistance)
	case c.Camera.AngleFollowSpeed < 0:
		return fmt.Errorf("%w: angle follow speed %v", ErrInvalidConfig, c.Camera.AngleFollowSpeed)
	case c.Camera.AngleThreshold < -1 || c.Camera.AngleThreshold > 1:
		return fmt.Errorf("%w: angle threshold %v outside [-1, 1]", ErrInvalidConfig, c.Camera.AngleThreshold)
	case c.City.BlocksPerSide <= 0:
		return fmt.Errorf("%w: blocks per side %d", ErrInvalidConfig, c.City.BlocksPerSide)
	case c.City.BlockSize <= 0:
		return fmt.Errorf("%w: block size %v", ErrInvalidConfig, c.City.BlockSize)
	case c.City.StreetWidth <= 0:
		return fmt.Errorf("%w: street width %v", ErrInvalidConfig, c.City.StreetWidth)
	case c.City.DistanceBetweenCities <= 0:
		return fmt.Errorf("%w: distance between cities %v", ErrInvalidConfig, c.City.DistanceBetweenCities)
	case c.City.Span() >= c.City.DistanceBetweenCities:
		return fmt.Errorf("%w: city span %v overlaps its neighbours %v apart", ErrInvalidConfig, c.City.Span(), c.City.DistanceBetweenCities)
	case c.City.MaxHeight < c.City.MinHeight:
		return fmt.Errorf("%w: building heights min=%v max=%v", ErrInvalidConfig, c.City.MinHeight, c.City.MaxHeight)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetAspectRatio is the ratio the follow camera projection is built with.
func (c *Config) GetAspectRatio() float32 {
	return float32(c.Display.ScreenWidth) / float32(c.Display.ScreenHeight)
}

// GetTimeStep returns the seconds elapsed between two updates.
func (c *Config) GetTimeStep() float32 {
	return 1 / float32(c.Display.TPS)
}

// CameraSettings converts the camera section to camera.Settings.
func (c *Config) CameraSettings() camera.Settings {
	return camera.Settings{
		FieldOfView:      mgl32.DegToRad(c.Camera.FieldOfView),
		NearPlane:        c.Camera.NearPlane,
		FarPlane:         c.Camera.FarPlane,
		AxisDistance:     c.Camera.AxisDistance,
		AngleFollowSpeed: c.Camera.AngleFollowSpeed,
		AngleThreshold:   c.Camera.AngleThreshold,
	}
}

// GetSnapTurnRadians converts the snap turn angle for the car.
func (v VehicleConfig) GetSnapTurnRadians() float32 {
	return mgl32.DegToRad(v.SnapTurnAngle)
}
