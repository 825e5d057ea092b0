package orbital2d

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, "leo.toml", `
[orbit]
body = "Earth"
eccentricity = 0.01
semi_major_axis = 7000
argument_of_periapsis_deg = 90

[ephemeris]
epoch = "2017-03-20T14:45:00Z"
step = "30s"
duration = "2h"
format = "XYZV"
output = "leo.xyzv"

[path]
resolution = 42
focus_x = 1.5
focus_y = -2
`)
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "leo" {
		t.Fatalf("name=%s", s.Name)
	}
	if ok, err := s.Orbit.Equals(NewOrbitAround(0.01, 7000, math.Pi/2, Earth)); !ok {
		t.Fatalf("orbit %s: %s", s.Orbit, err)
	}
	if !s.Epoch.Equal(time.Date(2017, 3, 20, 14, 45, 0, 0, time.UTC)) {
		t.Fatalf("epoch=%s", s.Epoch)
	}
	if s.Step != 30*time.Second || s.Duration != 2*time.Hour || !s.End().Equal(s.Epoch.Add(2*time.Hour)) {
		t.Fatalf("step=%s duration=%s", s.Step, s.Duration)
	}
	if s.Format != "xyzv" || s.Output != "leo.xyzv" {
		t.Fatalf("format=%s output=%s", s.Format, s.Output)
	}
	if s.Resolution != 42 || s.Focus != (Vector2{1.5, -2}) {
		t.Fatalf("resolution=%d focus=%+v", s.Resolution, s.Focus)
	}
	if ephem := s.Ephemeris(); ephem.Step != s.Step || ephem.Name != "leo" {
		t.Fatal("ephemeris does not follow the scenario")
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	path := writeScenario(t, "radii.toml", `
[general]
name = "molniya"

[orbit]
mu = 398600.433
apoapsis = 46378
periapsis = 6878
`)
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "molniya" {
		t.Fatalf("name=%s", s.Name)
	}
	if !floats.EqualWithinAbs(s.Orbit.SemiMajorAxis(), 26628, 1e-9) || !floats.EqualWithinAbs(s.Orbit.Eccentricity(), 0.7417, 1e-4) {
		t.Fatalf("orbit=%s", s.Orbit)
	}
	if s.Step != time.Minute || s.Format != "csv" || s.Resolution != 100 || s.Output != "" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if T, _ := s.Orbit.PeriodDuration(); s.Duration != T {
		t.Fatalf("duration=%s expected one period", s.Duration)
	}
}

func TestLoadScenarioEnv(t *testing.T) {
	path := writeScenario(t, "env.toml", `
[orbit]
mu = 1
eccentricity = 0.5
semi_major_axis = 10
`)
	t.Setenv("ORBIT2D_ORBIT_ECCENTRICITY", "0.25")
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Orbit.Eccentricity() != 0.25 {
		t.Fatalf("e=%f", s.Orbit.Eccentricity())
	}
}

func TestLoadScenarioLongPeriod(t *testing.T) {
	const content = `
[orbit]
body = "Sun"
eccentricity = 0.2
semi_major_axis = 1.496e10
`
	_, err := LoadScenario(writeScenario(t, "scattered.toml", content))
	if !errors.Is(err, ErrPeriodTooLong) {
		t.Fatalf("expected %s, got %v", ErrPeriodTooLong, err)
	}
	if !strings.Contains(err.Error(), "ephemeris.duration") {
		t.Fatalf("error should point to ephemeris.duration: %s", err)
	}
	s, err := LoadScenario(writeScenario(t, "scattered-decade.toml", content+"[ephemeris]\nduration = \"87600h\"\nstep = \"24h\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Duration != 87600*time.Hour {
		t.Fatalf("duration=%s", s.Duration)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	for name, content := range map[string]string{
		"nobody.toml":    "[orbit]\neccentricity = 0.1\nsemi_major_axis = 10\n",
		"vesta.toml":     "[orbit]\nbody = \"Vesta\"\nsemi_major_axis = 10\n",
		"noaxis.toml":    "[orbit]\nmu = 1\neccentricity = 0.1\n",
		"radii.toml":     "[orbit]\nmu = 1\napoapsis = 1\nperiapsis = 2\n",
		"hyperbola.toml": "[orbit]\nmu = 1\neccentricity = 1.5\nsemi_major_axis = 10\n",
		"epoch.toml":     "[orbit]\nmu = 1\nsemi_major_axis = 10\n[ephemeris]\nepoch = \"yesterday\"\n",
		"step.toml":      "[orbit]\nmu = 1\nsemi_major_axis = 10\n[ephemeris]\nstep = \"-1s\"\n",
		"format.toml":    "[orbit]\nmu = 1\nsemi_major_axis = 10\n[ephemeris]\nformat = \"json\"\n",
		"duration.toml":  "[orbit]\nmu = 1\nsemi_major_axis = 10\n[ephemeris]\nduration = \"-1h\"\n",
	} {
		if _, err := LoadScenario(writeScenario(t, name, content)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file should fail")
	}
	_, err := LoadScenario(writeScenario(t, "hyperbolic.toml", "[orbit]\nmu = 1\neccentricity = 2\nsemi_major_axis = 10\n"))
	if !errors.Is(err, ErrNotElliptic) {
		t.Fatalf("expected %s, got %v", ErrNotElliptic, err)
	}
}
