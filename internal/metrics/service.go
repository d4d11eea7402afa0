package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		WatcherPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_watcher_passes_total",
			Help: "The total number of polling passes the watcher has run.",
		}),
		FollowsChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_follows_checked_total",
			Help: "The total number of follow records checked across all passes.",
		}),
		FollowsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_follows_expired_total",
			Help: "The total number of follow records removed after expiring.",
		}),
		MatchesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_matches_detected_total",
			Help: "The total number of newly completed matches detected.",
		}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "riftwatch_pass_duration_seconds",
			Help:    "The duration of individual watcher passes.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		DiscordNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_discord_notifications_sent_total",
			Help: "The total number of Discord notifications successfully sent.",
		}),
		DiscordNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riftwatch_discord_notifications_failed_total",
			Help: "The total number of Discord notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "riftwatch_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.WatcherPasses,
		s.FollowsChecked,
		s.FollowsExpired,
		s.MatchesDetected,
		s.PassDuration,
		s.DiscordNotifSent,
		s.DiscordNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncWatcherPasses() {
	s.WatcherPasses.Inc()
}

func (s *Service) IncFollowsChecked() {
	s.FollowsChecked.Inc()
}

func (s *Service) IncFollowsExpired() {
	s.FollowsExpired.Inc()
}

func (s *Service) IncMatchesDetected() {
	s.MatchesDetected.Inc()
}

func (s *Service) ObservePassDuration(duration float64) {
	s.PassDuration.Observe(duration)
}

func (s *Service) IncDiscordNotifSent() {
	s.DiscordNotifSent.Inc()
}

func (s *Service) IncDiscordNotifFailed() {
	s.DiscordNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
