// Command cliquepart solves Clique Partitioning Problem instances in the
// CPn format with one of two search strategies:
//
//	cliquepart dps instance.txt --time-limit 20m
//	cliquepart fss instance.txt --seed 42 --iterations 5000
//
// The initial SA temperature is auto-calibrated unless --temperature is
// given. With --chart the improvement trace is rendered to an HTML file;
// with --metrics-addr prometheus metrics are served while the search
// runs; with --result-log (dps only) the final pool values are written
// one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/cliquepart/cpn"
	"github.com/katalvlaran/cliquepart/cpp"
	"github.com/katalvlaran/cliquepart/plot"
)

// exitCodeInputError is returned when the instance cannot be loaded or the
// command line is rejected (bad arguments, flags, or options); a search
// that runs always exits zero with the best-so-far result printed.
const exitCodeInputError = 1

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeInputError)
	}
}

// searchFlags collects the CLI knobs shared by both strategies.
type searchFlags struct {
	opts        cpp.Options
	timeLimit   time.Duration
	chartPath   string
	metricsAddr string
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cliquepart",
		Short:         "Metaheuristic solver for the Clique Partitioning Problem",
		Long:          "cliquepart partitions a complete signed-weight graph into cliques maximizing the intra-clique weight sum, via Diverse Pool Search or Fixed-Set Search.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newDPSCommand(), newFSSCommand())

	return root
}

// addCommonFlags binds the strategy-independent knobs onto cmd.
func addCommonFlags(cmd *cobra.Command, f *searchFlags) {
	flags := cmd.Flags()
	flags.Float64Var(&f.opts.InitialTemperature, "temperature", 0, "initial SA temperature (<=0: auto-calibrate)")
	flags.Float64Var(&f.opts.BatchSizeScaleFactor, "batch-scale", cpp.DefaultBatchSizeScaleFactor, "SA batch size scale factor sigma")
	flags.Float64Var(&f.opts.CooldownFactor, "cooldown", cpp.DefaultCooldownFactor, "SA cooldown factor theta in (0,1)")
	flags.Float64Var(&f.opts.MinimalTransitionRatio, "min-transition-ratio", cpp.DefaultMinimalTransitionRatio, "SA stagnation acceptance-ratio threshold")
	flags.IntVar(&f.opts.CandidateListLength, "rcl-length", cpp.DefaultCandidateListLength, "greedy adding restricted candidate list length alpha")
	flags.IntVar(&f.opts.Iterations, "iterations", cpp.DefaultIterations, "outer loop iteration budget")
	flags.IntVar(&f.opts.GRASPIterations, "grasp-iterations", 0, "GRASP seed budget (0: strategy default)")
	flags.DurationVar(&f.timeLimit, "time-limit", 20*time.Minute, "wall-clock budget (0: unlimited)")
	flags.Int64Var(&f.opts.Seed, "seed", 0, "RNG seed (0: fixed default state)")
	flags.BoolVar(&f.opts.AllowSingletonMoves, "allow-singleton-moves", false, "allow SA to move lone vertices between empty cliques")
	flags.StringVar(&f.chartPath, "chart", "", "write an HTML convergence chart to this path")
	flags.StringVar(&f.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while searching")
}

func newDPSCommand() *cobra.Command {
	f := &searchFlags{opts: cpp.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "dps <instance>",
		Short: "Run Diverse Pool Search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrategy(args[0], f, "Diverse Pool Search", cpp.DiversePoolSearch)
		},
	}
	addCommonFlags(cmd, f)

	flags := cmd.Flags()
	flags.IntVar(&f.opts.PoolSize, "pool-size", cpp.DefaultPoolSize, "diverse pool capacity")
	flags.IntVar(&f.opts.ImprovementFactor, "improvement-factor", cpp.DefaultImprovementFactor, "re-improvement schedule scale")
	flags.StringVar(&f.opts.ResultLog, "result-log", "", "write final pool values to this path")

	return cmd
}

func newFSSCommand() *cobra.Command {
	f := &searchFlags{opts: cpp.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "fss <instance>",
		Short: "Run Fixed-Set Search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrategy(args[0], f, "Fixed-Set Search", cpp.FixedSetSearch)
		},
	}
	addCommonFlags(cmd, f)

	flags := cmd.Flags()
	flags.IntVar(&f.opts.BaseSelectionSize, "base-selection", cpp.DefaultBaseSelectionSize, "base solutions drawn from the top-m records")
	flags.IntVar(&f.opts.CandidatePoolSize, "candidate-pool", cpp.DefaultCandidatePoolSize, "consensus subset drawn from the top-n records")
	flags.IntVar(&f.opts.FixedSetSolutions, "fixed-set-size", cpp.DefaultFixedSetSolutions, "consensus subset size k")
	flags.IntVar(&f.opts.MaxStagnationPerPortion, "max-stagnation", cpp.DefaultMaxStagnationPerPortion, "iterations without a new best before the portion advances")

	return cmd
}

// runStrategy loads the instance, runs the chosen strategy, and reports.
// A load failure or options rejected by the strategy is an error
// (non-zero exit); the search itself always completes with its
// best-so-far result.
func runStrategy(path string, f *searchFlags, name string, strategy func([][]int, cpp.Options) (cpp.Result, error)) error {
	klog.V(1).Infof("reading problem data from %s", path)

	weights, err := cpn.ReadFile(path)
	if err != nil {
		return err
	}

	if f.metricsAddr != "" {
		serveMetrics(f.metricsAddr)
	}

	f.opts.TimeLimit = f.timeLimit

	klog.V(1).Infof("running %s", name)
	start := time.Now()

	result, err := strategy(weights, f.opts)
	if err != nil {
		// Options rejected before any search happened: report and exit
		// non-zero through main.
		return err
	}
	duration := time.Since(start)

	fmt.Printf("Duration: %s\n", duration.Round(time.Millisecond))
	fmt.Printf("Value for best partition: %d\n", result.Value)
	printPartition(result.Partition)

	if f.chartPath != "" {
		if cerr := plot.SaveConvergence(result.Trace, name, f.chartPath); cerr != nil {
			klog.Errorf("chart not written: %v", cerr)
		}
	}

	return nil
}

// serveMetrics exposes the default prometheus registry in the background;
// the search itself stays single-threaded.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("metrics listener: %v", err)
		}
	}()
}

// printPartition writes the non-empty cliques, one per line.
func printPartition(p cpp.Partition) {
	var (
		k      int
		clique []int
	)
	for k = range p {
		clique = p[k]
		if len(clique) == 0 {
			continue
		}
		fmt.Printf("clique %d: %v\n", k, clique)
	}
}
