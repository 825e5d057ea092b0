package orbital2d

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Scenario is an orbit with the settings to sample it, as read from a configuration file.
type Scenario struct {
	Name       string
	Orbit      Orbit
	Epoch      time.Time
	Step       time.Duration
	Duration   time.Duration
	Format     string // csv or xyzv
	Output     string // empty for stdout
	Resolution int
	Focus      Vector2
}

// LoadScenario reads a scenario file (TOML, YAML or JSON). Any key can be overridden by an environment
// variable, e.g. ORBIT2D_ORBIT_ECCENTRICITY for orbit.eccentricity.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("orbit2d")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("ephemeris.epoch", "2000-01-01T12:00:00Z")
	v.SetDefault("ephemeris.step", "1m")
	v.SetDefault("ephemeris.format", "csv")
	v.SetDefault("path.resolution", 100)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("could not read scenario %s: %w", path, err)
	}

	s := Scenario{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	if name := v.GetString("general.name"); name != "" {
		s.Name = name
	}
	orbit, err := readOrbit(v)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	s.Orbit = orbit

	if s.Epoch, err = time.Parse(time.RFC3339, v.GetString("ephemeris.epoch")); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: invalid epoch: %w", s.Name, err)
	}
	s.Step = v.GetDuration("ephemeris.step")
	if s.Step <= 0 {
		return Scenario{}, fmt.Errorf("scenario %s: invalid step `%s`", s.Name, v.GetString("ephemeris.step"))
	}
	if v.IsSet("ephemeris.duration") {
		s.Duration = v.GetDuration("ephemeris.duration")
	} else {
		// One revolution.
		if s.Duration, err = s.Orbit.PeriodDuration(); err != nil {
			return Scenario{}, fmt.Errorf("scenario %s: %w, set ephemeris.duration", s.Name, err)
		}
	}
	if s.Duration < 0 {
		return Scenario{}, fmt.Errorf("scenario %s: negative duration", s.Name)
	}
	s.Format = strings.ToLower(v.GetString("ephemeris.format"))
	if s.Format != "csv" && s.Format != "xyzv" {
		return Scenario{}, fmt.Errorf("scenario %s: unknown format `%s`", s.Name, s.Format)
	}
	s.Output = v.GetString("ephemeris.output")
	s.Resolution = v.GetInt("path.resolution")
	s.Focus = Vector2{v.GetFloat64("path.focus_x"), v.GetFloat64("path.focus_y")}
	return s, nil
}

func readOrbit(v *viper.Viper) (Orbit, error) {
	var μ float64
	if v.IsSet("orbit.body") {
		body, err := CelestialObjectFromString(v.GetString("orbit.body"))
		if err != nil {
			return Orbit{}, err
		}
		μ = body.GM()
	}
	if v.IsSet("orbit.mu") {
		μ = v.GetFloat64("orbit.mu")
	}
	if μ == 0 {
		return Orbit{}, errors.New("one of orbit.body or orbit.mu is required")
	}

	var a, e float64
	switch {
	case v.IsSet("orbit.semi_major_axis"):
		a = v.GetFloat64("orbit.semi_major_axis")
		e = v.GetFloat64("orbit.eccentricity")
	case v.IsSet("orbit.apoapsis") && v.IsSet("orbit.periapsis"):
		rA, rP := v.GetFloat64("orbit.apoapsis"), v.GetFloat64("orbit.periapsis")
		if rA < rP {
			return Orbit{}, errors.New("periapsis cannot be greater than apoapsis")
		}
		a, e = Radii2ae(rA, rP)
	default:
		return Orbit{}, errors.New("orbit.semi_major_axis or both orbit.apoapsis and orbit.periapsis are required")
	}
	ω := Deg2rad(v.GetFloat64("orbit.argument_of_periapsis_deg"))
	o := NewOrbit(e, a, ω, μ)
	if err := o.Validate(); err != nil {
		return Orbit{}, err
	}
	return o, nil
}

// Ephemeris returns the ephemeris of this scenario.
func (s Scenario) Ephemeris() *Ephemeris {
	return NewEphemeris(s.Name, s.Orbit, s.Epoch, s.Step)
}

// End returns the last date of the ephemeris.
func (s Scenario) End() time.Time {
	return s.Epoch.Add(s.Duration)
}
