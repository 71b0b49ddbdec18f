package supervisor

import "github.com/prometheus/client_golang/prometheus"

var (
	childUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "llamactld",
		Subsystem: "supervisor",
		Name:      "child_up",
		Help:      "1 while a managed llama-server process is running",
	})

	childStartsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "llamactld",
		Subsystem: "supervisor",
		Name:      "child_starts_total",
		Help:      "Total successful model launches",
	})

	childStopsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "llamactld",
		Subsystem: "supervisor",
		Name:      "child_stops_total",
		Help:      "Total completed stop protocols",
	})

	childUnexpectedExits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "llamactld",
		Subsystem: "supervisor",
		Name:      "child_unexpected_exits_total",
		Help:      "Total times the child was found exited without a stop request",
	})
)

func init() {
	prometheus.MustRegister(childUp, childStartsTotal, childStopsTotal, childUnexpectedExits)
}
