package http

import (
	"net/http"

	"riftwatch/internal/config"
	"riftwatch/internal/follow"
	"riftwatch/internal/metrics"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/watcher"
)

type Server struct {
	Store          follow.Store
	FollowSvc      *follow.Service
	Watcher        *watcher.Watcher
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
