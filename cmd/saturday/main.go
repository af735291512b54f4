package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/encoding"
	"github.com/ericr/saturday/metrics"
	"github.com/ericr/saturday/simp"
	"github.com/ericr/saturday/solver"
)

var (
	configPath  string
	metricsAddr string
	noElim      bool
	models      uint
	varDecay    float64
	claDecay    float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saturday input.cnf",
		Short: "Saturday is a CDCL SAT solver with a bounded variable elimination preprocessor",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (disabled if empty)")
	flags.BoolVar(&noElim, "no-elim", false, "disable bounded variable elimination (subsumption and strengthening still run)")
	flags.UintVarP(&models, "models", "m", 1, "number of models to find")
	flags.Float64Var(&varDecay, "decay-var", 0, "variable decay constant (overrides --config)")
	flags.Float64Var(&claDecay, "decay-cla", 0, "clause decay constant (overrides --config)")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	conf.Models = models
	if cmd.Flags().Changed("decay-var") {
		conf.VarDecay = varDecay
	}
	if cmd.Flags().Changed("decay-cla") {
		conf.ClaDecay = claDecay
	}
	if noElim {
		conf.Simp.Elim = false
	}

	if metricsAddr != "" {
		serveMetrics(conf, metricsAddr)
	}

	sentences, err := readCNF(args[0])
	if err != nil {
		return err
	}

	sat := simp.New(conf)
	for _, clause := range sentences {
		sat.AddClause(clause)
	}
	conf.Logger.Infof("starting Saturday %s solver", solver.Version())

	tStart := time.Now()
	results, nEliminated := solve(sat, conf)
	conf.Logger.Info("finished solving")

	metrics.Report(sat, nEliminated)
	displayStats(sat.Solver, nEliminated, time.Since(tStart))

	if err := encoding.WriteDimacs(os.Stdout, results); err != nil {
		return err
	}
	if len(results) == 0 {
		os.Exit(3)
	}
	return nil
}

// solve runs the preprocessor-backed search for a single model, or — when
// more than one model is requested — turns the preprocessor off first and
// falls back to the base solver's own enumeration. A variable the
// preprocessor eliminated has no entry in the base search's own trail, so
// SolveMany's per-model blocking clauses can't be trusted to exclude it
// correctly; disabling elimination for multi-model runs sidesteps that
// rather than extending each enumerated model individually.
func solve(sat *simp.Solver, conf *config.Config) ([][]int, int) {
	if conf.Models > 1 {
		conf.Simp.Elim = false
		sat.TurnOffSimplification()
		return sat.Solver.SolveMany([]int{}, conf.Models), countEliminated(sat)
	}
	if sat.Solve([]int{}) {
		return [][]int{sat.Answer()}, countEliminated(sat)
	}
	return [][]int{}, countEliminated(sat)
}

func countEliminated(sat *simp.Solver) int {
	n := 0
	for v := 0; v < sat.NVars(); v++ {
		if sat.IsEliminated(v) {
			n++
		}
	}
	return n
}

func serveMetrics(conf *config.Config, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			conf.Logger.WithError(err).Error("metrics server exited")
		}
	}()
}

func displayStats(s *solver.Solver, nEliminated int, t time.Duration) {
	fmt.Fprint(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Time Taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "Variables:     %d\n", s.NVars())
	fmt.Fprintf(os.Stderr, "Eliminated:    %d\n", nEliminated)
	fmt.Fprintf(os.Stderr, "Constraints:   %d\n", s.NConstrs())
	fmt.Fprintf(os.Stderr, "Conflicts:     %d\n", s.NConflicts())
	fmt.Fprintf(os.Stderr, "Propagations:  %d\n", s.NPropagations())
	fmt.Fprintf(os.Stderr, "Restarts:      %d\n", s.NRestarts())
	fmt.Fprintf(os.Stderr, "Decisions:     %d\n", s.NDecisions())
	fmt.Fprint(os.Stderr, "\n")
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.New(), nil
	}
	return config.Load(configPath)
}

func readCNF(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	fs, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "statting %s", path)
	}
	if !fs.Mode().IsRegular() {
		return nil, errors.Errorf("open %s: not a readable file", path)
	}
	return encoding.ParseDimacs(bufio.NewReader(f))
}
