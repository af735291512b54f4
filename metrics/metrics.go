// Package metrics exposes the solver's and preprocessor's run statistics as
// Prometheus collectors, for the CLI's optional --metrics-addr server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	conflicts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_conflicts",
		Help: "Number of conflicts encountered during search.",
	})
	propagations = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_propagations",
		Help: "Number of unit propagations performed.",
	})
	decisions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_decisions",
		Help: "Number of branching decisions made.",
	})
	restarts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_restarts",
		Help: "Number of search restarts performed.",
	})
	variables = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_variables",
		Help: "Number of variables in the current problem.",
	})
	eliminatedVars = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_eliminated_variables",
		Help: "Number of variables removed by the preprocessor.",
	})
	merges = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saturday_elimination_merges",
		Help: "Number of pairwise clause resolutions variable elimination has attempted.",
	})
)

func init() {
	prometheus.MustRegister(conflicts)
	prometheus.MustRegister(propagations)
	prometheus.MustRegister(decisions)
	prometheus.MustRegister(restarts)
	prometheus.MustRegister(variables)
	prometheus.MustRegister(eliminatedVars)
	prometheus.MustRegister(merges)
}

// StatsSource is the subset of *simp.Solver's reporting surface the metrics
// package reads from, kept narrow so this package doesn't need to import
// simp (and so tests can supply a fake).
type StatsSource interface {
	NConflicts() int
	NPropagations() int
	NDecisions() int
	NRestarts() int
	NVars() int
	Merges() int
}

// Report sets the registered collectors to a finished (or in-progress)
// run's current cumulative counts, as read from s. Safe to call repeatedly
// against a solver that keeps running between calls, since every value set
// here is already a running total, not a delta.
func Report(s StatsSource, nEliminated int) {
	conflicts.Set(float64(s.NConflicts()))
	propagations.Set(float64(s.NPropagations()))
	decisions.Set(float64(s.NDecisions()))
	restarts.Set(float64(s.NRestarts()))
	variables.Set(float64(s.NVars()))
	eliminatedVars.Set(float64(nEliminated))
	merges.Set(float64(s.Merges()))
}
