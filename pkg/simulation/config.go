package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tochemey/goakt/v3/log"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

type Config struct {
	// Window size in pixels at start
	WindowWidth  int `json:"windowWidth" toml:"windowWidth"`
	WindowHeight int `json:"windowHeight" toml:"windowHeight"`

	// Population
	ShipCount int    `json:"shipCount" toml:"shipCount"`
	Seed      uint64 `json:"seed" toml:"seed"` // 0 picks a time based seed

	// Ripple lifecycle, in world units
	InitialRadius   float64 `json:"initialRadius" toml:"initialRadius"`
	FinalRadius     float64 `json:"finalRadius" toml:"finalRadius"`
	RadiusIncrement float64 `json:"radiusIncrement" toml:"radiusIncrement"`

	// Ships
	VectorSize   float64 `json:"vectorSize" toml:"vectorSize"` // magnitude of every normalized Delta
	ShipRadius   float64 `json:"shipRadius" toml:"shipRadius"`
	MinShipDelta float64 `json:"minShipDelta" toml:"minShipDelta"`
	MaxShipDelta float64 `json:"maxShipDelta" toml:"maxShipDelta"`
	MinSpeed     float64 `json:"minSpeed" toml:"minSpeed"`
	MaxSpeed     float64 `json:"maxSpeed" toml:"maxSpeed"`

	// DisplacementFactor is the K of the ripple push: K * (final - r) / (final - initial)
	DisplacementFactor float64 `json:"displacementFactor" toml:"displacementFactor"`

	// Flocking multipliers at start, adjusted at runtime with k/K a/A s/S
	Cohesion   int `json:"cohesion" toml:"cohesion"`
	Alignment  int `json:"alignment" toml:"alignment"`
	Separation int `json:"separation" toml:"separation"`

	// Timing
	TickMillis int `json:"tickMillis" toml:"tickMillis"`
	BeepMillis int `json:"beepMillis" toml:"beepMillis"`

	// BeepFrequencies is indexed by Color, None included
	BeepFrequencies []float64 `json:"beepFrequencies" toml:"beepFrequencies"`

	SpatialIndex bool   `json:"spatialIndex" toml:"spatialIndex"`
	Audio        bool   `json:"audio" toml:"audio"`
	LogLevel     string `json:"logLevel" toml:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:        800,
		WindowHeight:       800,
		ShipCount:          1000,
		InitialRadius:      0.0,
		FinalRadius:        0.5,
		RadiusIncrement:    0.01,
		VectorSize:         0.01,
		ShipRadius:         0.02,
		MinShipDelta:       -0.0001,
		MaxShipDelta:       0.0001,
		MinSpeed:           0.010,
		MaxSpeed:           0.045,
		DisplacementFactor: 0.05,
		TickMillis:         20,
		BeepMillis:         25,
		BeepFrequencies:    []float64{500, 1000, 1500, 2000, 2500, 3000, 3500, 5000},
		SpatialIndex:       true,
		Audio:              true,
		LogLevel:           "info",
	}
}

// TickInterval is the wall clock time between two simulation steps.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// TicksPerSecond is the ebiten TPS matching TickInterval.
func (c *Config) TicksPerSecond() int {
	return int(time.Second / c.TickInterval())
}

// BeepDuration is the length of the tone played when a ripple is spawned.
func (c *Config) BeepDuration() time.Duration {
	return time.Duration(c.BeepMillis) * time.Millisecond
}

// BeepFrequency returns the tone frequency for a ripple color.
func (c *Config) BeepFrequency(clr Color) float64 {
	if int(clr) < len(c.BeepFrequencies) {
		return c.BeepFrequencies[clr]
	}
	return 0
}

// Level maps LogLevel onto the actor system logger levels, info when unset.
func (c *Config) Level() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarningLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// LoadConfig reads a JSON or TOML file (chosen by extension) on top of DefaultConfig
// and validates the result against the embedded schema.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		b, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
	case ".toml":
		md, err := toml.DecodeFile(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in config toml: %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .json or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against the embedded JSON schema,
// then the cross field rules a schema cannot express.
func (c *Config) Validate() error {
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	var errs []error
	if c.FinalRadius <= c.InitialRadius {
		errs = append(errs, fmt.Errorf("finalRadius (%g) must be greater than initialRadius (%g)", c.FinalRadius, c.InitialRadius))
	}
	if c.MaxSpeed < c.MinSpeed {
		errs = append(errs, fmt.Errorf("maxSpeed (%g) must not be lower than minSpeed (%g)", c.MaxSpeed, c.MinSpeed))
	}
	if c.MaxShipDelta < c.MinShipDelta {
		errs = append(errs, fmt.Errorf("maxShipDelta (%g) must not be lower than minShipDelta (%g)", c.MaxShipDelta, c.MinShipDelta))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
