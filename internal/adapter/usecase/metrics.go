package usecase

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"launchpad/internal/core/domain"
)

var _launchpadMtc = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "launchpad_operations_total",
	Help: "Launchpad operations by outcome.",
}, []string{"op", "result"})

func init() {
	prometheus.MustRegister(_launchpadMtc)
}

func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = strings.ToLower(string(domain.CodeOf(err)))
	}
	_launchpadMtc.WithLabelValues(op, result).Inc()
}
