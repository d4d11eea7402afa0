package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncWatcherPasses()
	IncFollowsChecked()
	IncFollowsExpired()
	IncMatchesDetected()
	ObservePassDuration(duration float64)
	IncDiscordNotifSent()
	IncDiscordNotifFailed()
	SetStartupTime(duration float64)
}
