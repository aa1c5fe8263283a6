package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voltlab/dcsim/pkg/analysis"
	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/netlist"
	"github.com/voltlab/dcsim/pkg/util"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <netlist>",
		Short: "Run DC analysis over a circuit description",
		Long: `Analyze solves the circuit and prints the result.

With --ticks N each result is folded back into the snapshot before
the next run, so state feedback like a blowing fuse plays out across
ticks.

Example:
  dcsim analyze circuit.net --ticks 2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			ticks, _ := cmd.Flags().GetInt("ticks")
			if ticks < 1 {
				return fmt.Errorf("--ticks must be at least 1, got %d", ticks)
			}

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

			slog.Debug("loaded netlist", "file", args[0],
				"components", len(snap.Components),
				"connections", len(snap.Connections),
				"supply", supply)

			opts := cfg.Options()
			components := snap.Components
			results := make([]*circuit.Result, 0, ticks)
			for tick := 0; tick < ticks; tick++ {
				result := analysis.AnalyzeWithOptions(components, snap.Connections, supply, opts)
				results = append(results, result)
				slog.Debug("tick complete", "tick", tick+1,
					"status", result.Status.String(),
					"current", result.TotalCurrent)
				components = result.Apply(components)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if ticks == 1 {
					return enc.Encode(results[0])
				}
				return enc.Encode(results)
			}

			for i, result := range results {
				if ticks > 1 {
					fmt.Printf("=== Tick %d ===\n", i+1)
				}
				printResult(result)
			}
			return nil
		},
	}

	cmd.Flags().Int("ticks", 1, "Number of analysis ticks, folding each result into the next snapshot")
	cmd.Flags().Float64("supply", 0, "Override the netlist supply voltage")
	return cmd
}

func printResult(r *circuit.Result) {
	fmt.Printf("Status:           %s\n", r.Status)
	fmt.Printf("Total voltage:    %s\n", util.FormatValueFactor(r.TotalVoltage, "V"))
	fmt.Printf("Total current:    %s\n", util.FormatValueFactor(r.TotalCurrent, "A"))
	fmt.Printf("Total resistance: %s\n", util.FormatValueFactor(r.TotalResistance, "Ohm"))
	fmt.Printf("Total power:      %s\n", util.FormatValueFactor(r.TotalPower, "W"))
	fmt.Printf("KCL valid:        %t\n", r.KCLValid)
	fmt.Printf("KVL valid:        %t\n", r.KVLValid)
	fmt.Printf("Short circuit:    %t\n", r.IsShortCircuit)
	fmt.Printf("Fuse blown:       %t\n", r.FuseBlown)

	for _, msg := range r.ValidationErrors {
		fmt.Printf("  ! %s\n", msg)
	}

	if len(r.NodeVoltages) > 1 {
		fmt.Println("\nNode voltages:")
		for node := 1; node < len(r.NodeVoltages); node++ {
			fmt.Printf("  node %d: %s\n", node, util.FormatValueFactor(r.NodeVoltages[node], "V"))
		}
	}

	if len(r.Updates) > 0 {
		fmt.Println("\nComponents:")
		for _, name := range sortedKeys(r.Updates) {
			u := r.Updates[name]
			line := fmt.Sprintf("  %-12s %s", name, util.FormatValueFactor(u.Current, "A"))
			if u.Brightness > 0 {
				line += fmt.Sprintf("  brightness=%.2f", u.Brightness)
			}
			if u.Reading != 0 {
				line += fmt.Sprintf("  reading=%s", util.FormatMagnitude(u.Reading))
			}
			if u.Blown {
				line += "  BLOWN"
			}
			fmt.Println(line)
		}
	}

	if r.Power.Generated > 0 {
		fmt.Println("\nPower:")
		fmt.Printf("  generated:  %s\n", util.FormatValueFactor(r.Power.Generated, "W"))
		fmt.Printf("  consumed:   %s\n", util.FormatValueFactor(r.Power.Consumed, "W"))
		fmt.Printf("  efficiency: %.1f%%\n", r.Power.Efficiency)
	}
	fmt.Println()
}

func sortedKeys(m map[string]circuit.ComponentUpdate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
