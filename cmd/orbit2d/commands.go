package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChristopherRabotin/orbital2d"
	"github.com/ChristopherRabotin/orbital2d/kepler"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
)

func newRootCmd(logger kitlog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orbit2d",
		Short:         "Planar Keplerian orbits: anomalies, states, ephemerides and paths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSolveCmd(), newStateCmd(), newClassifyCmd(), newEphemCmd(logger), newPathCmd())
	return cmd
}

func newSolveCmd() *cobra.Command {
	var e, M float64
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve Kepler's equation for the eccentric anomaly (radians)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !orbital2d.Classify(e).Bound() {
				return fmt.Errorf("cannot solve Kepler's equation for a %s (e=%g)", orbital2d.Classify(e), e)
			}
			sol := kepler.Solve(e, M)
			fmt.Fprintf(cmd.OutOrStdout(), "E=%.15f iterations=%d converged=%v\n", sol.E, sol.Iterations, sol.Converged)
			return nil
		},
	}
	cmd.Flags().Float64Var(&e, "e", 0, "eccentricity in [0, 1)")
	cmd.Flags().Float64Var(&M, "M", 0, "mean anomaly (radians)")
	return cmd
}

func newStateCmd() *cobra.Command {
	var (
		e, a, ωDeg, μ, t float64
		body             string
	)
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Compute the anomalies, position and velocity at a time past periapsis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if body != "" {
				object, err := orbital2d.CelestialObjectFromString(body)
				if err != nil {
					return err
				}
				μ = object.GM()
			}
			o := orbital2d.NewOrbit(e, a, orbital2d.Deg2rad(ωDeg), μ)
			s, err := o.StateChecked(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), o)
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().Float64Var(&e, "e", 0, "eccentricity in [0, 1)")
	cmd.Flags().Float64Var(&a, "a", 1, "semi major axis")
	cmd.Flags().Float64Var(&ωDeg, "w", 0, "argument of periapsis (degrees)")
	cmd.Flags().Float64Var(&μ, "mu", 1, "gravitational parameter")
	cmd.Flags().StringVar(&body, "body", "", "central body (overrides --mu)")
	cmd.Flags().Float64Var(&t, "t", 0, "time since periapsis passage")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var e float64
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the conic section of an eccentricity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := orbital2d.Classify(e)
			if c == 0 {
				return fmt.Errorf("invalid eccentricity %g", e)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().Float64Var(&e, "e", 0, "eccentricity")
	return cmd
}

func newEphemCmd(logger kitlog.Logger) *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "ephem",
		Short: "Sample the orbit of a scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := orbital2d.LoadScenario(scenario)
			if err != nil {
				return err
			}
			ephem := s.Ephemeris()
			ephem.SetLogger(logger)
			states, err := ephem.Until(s.End())
			if err != nil {
				return err
			}
			return withOutput(cmd.OutOrStdout(), s.Output, func(w io.Writer) error {
				if s.Format == "xyzv" {
					return orbital2d.WriteXYZV(w, states)
				}
				return orbital2d.WriteCSV(w, states)
			})
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "", "scenario file (TOML, YAML or JSON)")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func newPathCmd() *cobra.Command {
	var scenario string
	var bezier bool
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Sample the ellipse of a scenario file around its focus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := orbital2d.LoadScenario(scenario)
			if err != nil {
				return err
			}
			if bezier {
				path, err := orbital2d.BezierPath(s.Orbit, s.Focus)
				if err != nil {
					return err
				}
				return orbital2d.WriteBezierCSV(cmd.OutOrStdout(), path)
			}
			points, err := orbital2d.EllipsePoints(s.Orbit, s.Focus, s.Resolution)
			if err != nil {
				return err
			}
			return orbital2d.WritePointsCSV(cmd.OutOrStdout(), points)
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "", "scenario file (TOML, YAML or JSON)")
	cmd.Flags().BoolVar(&bezier, "bezier", false, "print the four arc Bézier path instead of sampled points")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

// withOutput calls write with stdout if filename is empty, or with the created file otherwise.
func withOutput(stdout io.Writer, filename string, write func(io.Writer) error) error {
	if filename == "" {
		return write(stdout)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
