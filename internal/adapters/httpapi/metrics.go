package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kidfun",
	Subsystem: "coordination",
	Name:      "operations_total",
	Help:      "Successful coordination operations by name.",
}, []string{"operation"})
