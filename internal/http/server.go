package http

import (
	"net/http"

	"riftwatch/internal/config"
	"riftwatch/internal/follow"
	"riftwatch/internal/metrics"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/watcher"
)

func NewServer(store follow.Store, followSvc *follow.Service, w *watcher.Watcher, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		FollowSvc:      followSvc,
		Watcher:        w,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/follow", Chain(s.FollowHandler(), paramsMiddleware))
	s.Router.Handle("/unfollow", Chain(s.UnfollowHandler(), paramsMiddleware))
	s.Router.Handle("/follows", Chain(s.ListFollowsHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/check", Chain(s.CheckHandler(), paramsMiddleware))
	s.Router.Handle("/update-summoner-stats", Chain(s.UpdateSummonerStatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
