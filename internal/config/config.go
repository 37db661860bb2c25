package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all navigation and tooling configuration values
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Viewer      ViewerConfig      `yaml:"viewer"`
	Report      ReportConfig      `yaml:"report"`
}

type WorldConfig struct {
	TileSize int    `yaml:"tile_size"`
	Tiles    string `yaml:"tiles"`
	Map      string `yaml:"map"`
}

type PathfindingConfig struct {
	MaxPathfindsPerFrame int   `yaml:"max_pathfinds_per_frame"`
	MaxDistance          int   `yaml:"max_distance"`
	RingSearchRadius     int   `yaml:"ring_search_radius"`
	CoverSearchRadius    int   `yaml:"cover_search_radius"`
	FlankDistance        int   `yaml:"flank_distance"`
	AvoidHazards         *bool `yaml:"avoid_hazards"`
	EightDirectional     bool  `yaml:"eight_directional"`
}

type ViewerConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Watch        bool   `yaml:"watch"`
}

type ReportConfig struct {
	Frames         int `yaml:"frames"`
	Agents         int `yaml:"agents"`
	RepathInterval int `yaml:"repath_interval"`
	Runs           int `yaml:"runs"`
	Workers        int `yaml:"workers"`
}

// TileConfig is the root of tiles.yaml
type TileConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

type TileData struct {
	Name        string `yaml:"name"`
	Letter      string `yaml:"letter"`
	Solid       bool   `yaml:"solid"`
	Hazard      bool   `yaml:"hazard"`
	Transparent bool   `yaml:"transparent"`
	Color       [3]int `yaml:"color"`
}

const (
	DefaultTileSize             = 64
	DefaultMaxPathfindsPerFrame = 3
	DefaultMaxDistance          = 20
	DefaultRingSearchRadius     = 3
	DefaultCoverSearchRadius    = 6
	DefaultFlankDistance        = 4
	DefaultScreenWidth          = 1024
	DefaultScreenHeight         = 768
	DefaultWindowTitle          = "Grid Tactics"
	DefaultReportFrames         = 600
	DefaultReportAgents         = 6
	DefaultRepathInterval       = 30
	DefaultReportRuns           = 4
)

var ErrInvalidConfig = errors.New("invalid config")

// Global config instance
var GlobalConfig *Config

// DefaultConfig returns a configuration with every value at its default
func DefaultConfig() *Config {
	avoid := true
	return &Config{
		World: WorldConfig{
			TileSize: DefaultTileSize,
			Tiles:    "assets/tiles.yaml",
			Map:      "assets/maps/arena.map",
		},
		Pathfinding: PathfindingConfig{
			MaxPathfindsPerFrame: DefaultMaxPathfindsPerFrame,
			MaxDistance:          DefaultMaxDistance,
			RingSearchRadius:     DefaultRingSearchRadius,
			CoverSearchRadius:    DefaultCoverSearchRadius,
			FlankDistance:        DefaultFlankDistance,
			AvoidHazards:         &avoid,
		},
		Viewer: ViewerConfig{
			ScreenWidth:  DefaultScreenWidth,
			ScreenHeight: DefaultScreenHeight,
			WindowTitle:  DefaultWindowTitle,
			Watch:        true,
		},
		Report: ReportConfig{
			Frames:         DefaultReportFrames,
			Agents:         DefaultReportAgents,
			RepathInterval: DefaultRepathInterval,
			Runs:           DefaultReportRuns,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// ParseConfig decodes and validates YAML configuration
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values that are set but unusable. Zero values are left
// for the getters to default.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"world.tile_size", c.World.TileSize},
		{"pathfinding.max_pathfinds_per_frame", c.Pathfinding.MaxPathfindsPerFrame},
		{"pathfinding.max_distance", c.Pathfinding.MaxDistance},
		{"pathfinding.ring_search_radius", c.Pathfinding.RingSearchRadius},
		{"pathfinding.cover_search_radius", c.Pathfinding.CoverSearchRadius},
		{"pathfinding.flank_distance", c.Pathfinding.FlankDistance},
		{"viewer.screen_width", c.Viewer.ScreenWidth},
		{"viewer.screen_height", c.Viewer.ScreenHeight},
		{"report.frames", c.Report.Frames},
		{"report.agents", c.Report.Agents},
		{"report.repath_interval", c.Report.RepathInterval},
		{"report.runs", c.Report.Runs},
		{"report.workers", c.Report.Workers},
	}
	for _, check := range checks {
		if check.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d: %w", check.name, check.value, ErrInvalidConfig)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetTileSize() int {
	if c.World.TileSize > 0 {
		return c.World.TileSize
	}
	return DefaultTileSize
}

func (c *Config) GetTilesPath() string {
	if c.World.Tiles != "" {
		return c.World.Tiles
	}
	return "assets/tiles.yaml"
}

func (c *Config) GetMapPath() string {
	if c.World.Map != "" {
		return c.World.Map
	}
	return "assets/maps/arena.map"
}

func (c *Config) GetMaxPathfindsPerFrame() int {
	if c.Pathfinding.MaxPathfindsPerFrame > 0 {
		return c.Pathfinding.MaxPathfindsPerFrame
	}
	return DefaultMaxPathfindsPerFrame
}

func (c *Config) GetMaxDistance() int {
	if c.Pathfinding.MaxDistance > 0 {
		return c.Pathfinding.MaxDistance
	}
	return DefaultMaxDistance
}

func (c *Config) GetRingSearchRadius() int {
	if c.Pathfinding.RingSearchRadius > 0 {
		return c.Pathfinding.RingSearchRadius
	}
	return DefaultRingSearchRadius
}

func (c *Config) GetCoverSearchRadius() int {
	if c.Pathfinding.CoverSearchRadius > 0 {
		return c.Pathfinding.CoverSearchRadius
	}
	return DefaultCoverSearchRadius
}

func (c *Config) GetFlankDistance() int {
	if c.Pathfinding.FlankDistance > 0 {
		return c.Pathfinding.FlankDistance
	}
	return DefaultFlankDistance
}

// GetAvoidHazards defaults to true when the key is absent
func (c *Config) GetAvoidHazards() bool {
	if c.Pathfinding.AvoidHazards == nil {
		return true
	}
	return *c.Pathfinding.AvoidHazards
}

func (c *Config) GetEightDirectional() bool {
	return c.Pathfinding.EightDirectional
}

func (c *Config) GetScreenWidth() int {
	if c.Viewer.ScreenWidth > 0 {
		return c.Viewer.ScreenWidth
	}
	return DefaultScreenWidth
}

func (c *Config) GetScreenHeight() int {
	if c.Viewer.ScreenHeight > 0 {
		return c.Viewer.ScreenHeight
	}
	return DefaultScreenHeight
}

func (c *Config) GetWindowTitle() string {
	if c.Viewer.WindowTitle != "" {
		return c.Viewer.WindowTitle
	}
	return DefaultWindowTitle
}

func (c *Config) GetReportFrames() int {
	if c.Report.Frames > 0 {
		return c.Report.Frames
	}
	return DefaultReportFrames
}

func (c *Config) GetReportAgents() int {
	if c.Report.Agents > 0 {
		return c.Report.Agents
	}
	return DefaultReportAgents
}

func (c *Config) GetRepathInterval() int {
	if c.Report.RepathInterval > 0 {
		return c.Report.RepathInterval
	}
	return DefaultRepathInterval
}

func (c *Config) GetReportRuns() int {
	if c.Report.Runs > 0 {
		return c.Report.Runs
	}
	return DefaultReportRuns
}

// GetReportWorkers returns 0 when unset, meaning one worker per CPU
func (c *Config) GetReportWorkers() int {
	return c.Report.Workers
}
