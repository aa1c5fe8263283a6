package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voltlab/dcsim/pkg/analysis"
	"github.com/voltlab/dcsim/pkg/chart"
	"github.com/voltlab/dcsim/pkg/netlist"
	"github.com/voltlab/dcsim/pkg/util"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <netlist>",
		Short: "Sweep a source voltage and analyze each point",
		Long: `Sweep steps the named battery's voltage across [start, stop] and
runs a full analysis per point. Without --source the ambient supply
voltage is swept instead.

Example:
  dcsim sweep circuit.net --source b1 --start 0 --stop 12 --step 0.5 --plot out.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			source, _ := cmd.Flags().GetString("source")
			start, _ := cmd.Flags().GetFloat64("start")
			stop, _ := cmd.Flags().GetFloat64("stop")
			step, _ := cmd.Flags().GetFloat64("step")
			plotPath, _ := cmd.Flags().GetString("plot")
			powerPath, _ := cmd.Flags().GetString("power-plot")

			cfg, err := loadOptions(cmd)
			if err != nil {
				return err
			}

			snap, err := netlist.LoadFile(args[0])
			if err != nil {
				return err
			}

			supply := snap.Supply
			if cmd.Flags().Changed("supply") {
				supply, _ = cmd.Flags().GetFloat64("supply")
			}

			sweep := analysis.Sweep{Source: source, Start: start, Stop: stop, Step: step}
			points, err := sweep.RunWithOptions(snap.Components, snap.Connections, supply, cfg.Options())
			if err != nil {
				return err
			}

			slog.Debug("sweep complete", "source", source, "points", len(points))

			title := filepath.Base(args[0])
			if plotPath != "" {
				if err := chart.SweepCurrent(points, title, plotPath); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "wrote %s\n", plotPath)
			}
			if powerPath != "" {
				if err := chart.SweepPower(points, title, powerPath); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "wrote %s\n", powerPath)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(points)
			}

			fmt.Printf("%-10s %-14s %-14s %s\n", "V", "I total", "P total", "status")
			for _, pt := range points {
				fmt.Printf("%-10.3f %-14s %-14s %s\n", pt.Value,
					util.FormatValueFactor(pt.Result.TotalCurrent, "A"),
					util.FormatValueFactor(pt.Result.TotalPower, "W"),
					pt.Result.Status)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Battery ID to sweep (empty sweeps the supply voltage)")
	cmd.Flags().Float64("start", 0, "Sweep start voltage")
	cmd.Flags().Float64("stop", 0, "Sweep stop voltage")
	cmd.Flags().Float64("step", 1, "Sweep step voltage")
	cmd.Flags().String("plot", "", "Write a total-current plot to this file")
	cmd.Flags().String("power-plot", "", "Write a total-power plot to this file")
	cmd.Flags().Float64("supply", 0, "Override the netlist supply voltage")
	return cmd
}
