package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	WatcherPasses      prometheus.Counter
	FollowsChecked     prometheus.Counter
	FollowsExpired     prometheus.Counter
	MatchesDetected    prometheus.Counter
	PassDuration       prometheus.Histogram
	DiscordNotifSent   prometheus.Counter
	DiscordNotifFailed prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
