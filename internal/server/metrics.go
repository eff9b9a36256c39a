package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accucheck_datasets_analyzed_total",
		Help: "Datasets accepted and aggregated.",
	})
	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accucheck_dataset_validation_failures_total",
		Help: "Uploads rejected for missing required columns.",
	})
	chatTurns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accucheck_chat_turns_total",
		Help: "User chat turns processed.",
	})
)
