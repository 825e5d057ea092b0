package orbital2d

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

var csvHeader = []string{"time", "jd", "t", "M", "E", "nu", "r", "x", "y", "vx", "vy", "iterations", "converged"}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteCSV writes the states as CSV, with a header. Angles are in radians.
func WriteCSV(w io.Writer, states []EphemerisState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range states {
		record := []string{
			s.DT.UTC().Format(time.RFC3339Nano),
			formatFloat(julian.TimeToJD(s.DT)),
			formatFloat(s.T),
			formatFloat(s.M),
			formatFloat(s.E),
			formatFloat(s.ν),
			formatFloat(s.R),
			formatFloat(s.P.X),
			formatFloat(s.P.Y),
			formatFloat(s.V.X),
			formatFloat(s.V.Y),
			strconv.Itoa(s.Iterations),
			strconv.FormatBool(s.Converged),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXYZV writes the states as Cosmographia interpolated states: <jd> <x> <y> <z> <vx> <vy> <vz>.
func WriteXYZV(w io.Writer, states []EphemerisState) error {
	if len(states) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Time is a Julian date
#   Simulation time start (UTC): %s
`, states[0].DT.UTC()); err != nil {
		return err
	}
	for _, s := range states {
		if _, err := fmt.Fprintf(w, "%f %f %f %f %f %f %f\n", julian.TimeToJD(s.DT), s.P.X, s.P.Y, 0., s.V.X, s.V.Y, 0.); err != nil {
			return err
		}
	}
	return nil
}

// WritePointsCSV writes plane points as x,y records.
func WritePointsCSV(w io.Writer, points []Vector2) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBezierCSV writes the vertices of a Bézier path with their in and out handles.
func WriteBezierCSV(w io.Writer, path []CurvePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "in_x", "in_y", "out_x", "out_y"}); err != nil {
		return err
	}
	for _, p := range path {
		record := []string{
			formatFloat(p.Position.X), formatFloat(p.Position.Y),
			formatFloat(p.In.X), formatFloat(p.In.Y),
			formatFloat(p.Out.X), formatFloat(p.Out.Y),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
