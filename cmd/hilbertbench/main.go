// Command hilbertbench compares a row-major dense matrix-vector product
// against the same product computed along a discretized Hilbert curve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hilbert/bench"
	"github.com/katalvlaran/hilbert/curve"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hilbertbench",
		Short: "Benchmark row-major vs Hilbert-curve matrix-vector products",
		Long: `hilbertbench measures whether traversing a dense matrix along a
discretized Hilbert space-filling curve beats the plain row-major
order for the matrix-vector product, and by how much.

Both engines compute the identical integer result; only the memory
access pattern differs. Matrix sides must be powers of two.`,
		SilenceUsage: true,
	}

	// Run command: one size, human-readable report.
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single comparison at one matrix size",
		RunE:  runRun,
	}
	runCmd.Flags().Int("size", 2048, "Matrix side n (must be a power of two)")
	runCmd.Flags().Int("loops", 20, "Timed product calls per engine")
	runCmd.Flags().Int64("seed", 10, "RNG seed for input generation")
	runCmd.Flags().Bool("perf", false, "Also record hardware performance counters (Linux)")
	rootCmd.AddCommand(runCmd)

	// Sweep command: CSV rows across a size range.
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep matrix sizes 2^min-exp..2^max-exp, printing CSV rows",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Int("min-exp", 5, "Smallest size exponent (n = 2^min-exp)")
	sweepCmd.Flags().Int("max-exp", 13, "Largest size exponent (n = 2^max-exp)")
	sweepCmd.Flags().Int("loops", 20, "Timed product calls per engine")
	sweepCmd.Flags().Int64("seed", 10, "RNG seed for input generation")
	sweepCmd.Flags().Bool("perf", false, "Also record hardware performance counters (Linux)")
	rootCmd.AddCommand(sweepCmd)

	// Order command: print a traversal for inspection.
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Print the Hilbert traversal order for a given depth",
		RunE:  runOrder,
	}
	orderCmd.Flags().Int("depth", 2, "Curve depth d (grid side 2^d)")
	rootCmd.AddCommand(orderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	size, _ := cmd.Flags().GetInt("size")
	loops, _ := cmd.Flags().GetInt("loops")
	seed, _ := cmd.Flags().GetInt64("seed")
	perf, _ := cmd.Flags().GetBool("perf")

	c, err := bench.Compare(size, loops, seed, perf)
	if err != nil {
		return err
	}
	fmt.Println(c)

	return nil
}

func runSweep(cmd *cobra.Command, _ []string) error {
	minExp, _ := cmd.Flags().GetInt("min-exp")
	maxExp, _ := cmd.Flags().GetInt("max-exp")
	loops, _ := cmd.Flags().GetInt("loops")
	seed, _ := cmd.Flags().GetInt64("seed")
	perf, _ := cmd.Flags().GetBool("perf")

	if minExp < 0 || maxExp < minExp {
		return fmt.Errorf("invalid exponent range [%d, %d]", minExp, maxExp)
	}

	for exp := minExp; exp <= maxExp; exp++ {
		c, err := bench.Compare(1<<uint(exp), loops, seed, perf)
		if err != nil {
			return err
		}
		for _, row := range c.CSVRows() {
			fmt.Println(row)
		}
	}

	return nil
}

func runOrder(cmd *cobra.Command, _ []string) error {
	depth, _ := cmd.Flags().GetInt("depth")

	order, err := curve.Order(depth)
	if err != nil {
		return err
	}
	for _, s := range order {
		fmt.Printf("%d -> (%d,%d)\n", s.T, s.At.Row, s.At.Col)
	}

	return nil
}
