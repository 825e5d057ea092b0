package orbital2d

import (
	"errors"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// EphemerisState is an orbit state at a given date.
type EphemerisState struct {
	DT time.Time
	State
}

// Ephemeris samples an orbit at a fixed time step. The orbit time unit is the second and Epoch is
// the periapsis passage (t=0).
type Ephemeris struct {
	Name   string
	Orbit  Orbit
	Epoch  time.Time
	Step   time.Duration
	logger kitlog.Logger
}

// NewEphemeris returns a new ephemeris which logs to stderr.
func NewEphemeris(name string, o Orbit, epoch time.Time, step time.Duration) *Ephemeris {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	klog = kitlog.With(klog, "ephemeris", name)
	return &Ephemeris{name, o, epoch, step, klog}
}

// SetLogger replaces the logger.
func (e *Ephemeris) SetLogger(logger kitlog.Logger) {
	e.logger = kitlog.With(logger, "ephemeris", e.Name)
}

// Stream sends the state at every step from Epoch until end (inclusive) to out, and closes out.
// Blocks until all states were consumed.
func (e *Ephemeris) Stream(end time.Time, out chan<- EphemerisState) error {
	defer close(out)
	if e.Step <= 0 {
		return errors.New("ephemeris step must be strictly positive")
	}
	if end.Before(e.Epoch) {
		return errors.New("ephemeris end is before its epoch")
	}
	if err := e.Orbit.Validate(); err != nil {
		e.logger.Log("level", "critical", "subsys", "astro", "orbit", e.Orbit, "err", err)
		return err
	}
	samples := int64(end.Sub(e.Epoch)/e.Step) + 1
	e.logger.Log("level", "info", "subsys", "astro", "orbit", e.Orbit, "from", e.Epoch, "until", end, "step", e.Step, "samples", samples)
	unconverged := 0
	for i := int64(0); i < samples; i++ {
		offset := time.Duration(i) * e.Step
		state := e.Orbit.At(offset.Seconds())
		if !state.Converged {
			unconverged++
			e.logger.Log("level", "warning", "subsys", "kepler", "message", "did not converge", "t", state.T, "M", state.M, "iterations", state.Iterations)
		}
		out <- EphemerisState{e.Epoch.Add(offset), state}
	}
	e.logger.Log("level", "notice", "subsys", "astro", "status", "finished", "samples", samples, "unconverged", unconverged)
	return nil
}

// Until returns all the states from Epoch until end (inclusive).
func (e *Ephemeris) Until(end time.Time) ([]EphemerisState, error) {
	stateChan := make(chan EphemerisState, 64)
	errChan := make(chan error, 1)
	go func() {
		errChan <- e.Stream(end, stateChan)
	}()
	var states []EphemerisState
	for state := range stateChan {
		states = append(states, state)
	}
	return states, <-errChan
}
