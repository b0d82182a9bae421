// Package metrics records engine activity as Prometheus metrics. There is no
// HTTP endpoint; the CLI and TUI write the registry to a textfile on exit so
// a node_exporter textfile collector can pick it up.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

const namespace = "rivalgoals"

// Recorder implements engine.Observer on a private registry.
type Recorder struct {
	reg *prometheus.Registry

	ActionsTotal     *prometheus.CounterVec
	SavesTotal       *prometheus.CounterVec
	RivalXPGained    prometheus.Counter
	RolloversTotal   prometheus.Counter
	UserXP           prometheus.Gauge
	RivalXP          prometheus.Gauge
	RivalTarget      prometheus.Gauge
	Streak           prometheus.Gauge
	FocusBlocksTotal prometheus.Gauge
}

var _ engine.Observer = (*Recorder)(nil)

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		ActionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Total number of dispatched actions",
		}, []string{"action"}),
		SavesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Total number of state saves by result",
		}, []string{"result"}), // ok, error
		RivalXPGained: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rival_xp_gained_total",
			Help:      "XP gained by the rival",
		}),
		RolloversTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "day_rollovers_total",
			Help:      "Total number of day rollovers",
		}),
		UserXP: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "user_xp",
			Help:      "User XP earned today",
		}),
		RivalXP: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rival_xp",
			Help:      "Rival XP earned today",
		}),
		RivalTarget: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rival_target_xp",
			Help:      "Rival XP target for today",
		}),
		Streak: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "streak_days",
			Help:      "Current streak in days",
		}),
		FocusBlocksTotal: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "focus_blocks",
			Help:      "Lifetime completed focus blocks",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

func (r *Recorder) ActionDispatched(t engine.ActionType) {
	r.ActionsTotal.WithLabelValues(string(t)).Inc()
}

func (r *Recorder) StateSaved(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.SavesTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) RivalGained(xp int) {
	r.RivalXPGained.Add(float64(xp))
}

func (r *Recorder) DayRolledOver() {
	r.RolloversTotal.Inc()
}

// Observe updates the state gauges. It is meant to be passed to
// engine.Subscribe.
func (r *Recorder) Observe(s state.AppState) {
	r.UserXP.Set(float64(s.CurrentUserXP))
	r.RivalXP.Set(float64(s.CurrentRivaXP))
	r.RivalTarget.Set(float64(s.RivaTargetToday))
	r.Streak.Set(float64(s.CurrentStreak))
	r.FocusBlocksTotal.Set(float64(s.TotalFocusBlocksCompleted))
}

// WriteTextfile writes the registry in the Prometheus text format. An empty
// path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
