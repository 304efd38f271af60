// Package monitoring collects in-process metrics for the composition engine.
// The collector owns its own prometheus registry so independent fixtures
// never collide; nothing here is exposed over the network.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
)

// Collector counts pizza builds and placed orders.
type Collector struct {
	registry      *prometheus.Registry
	pizzasBuilt   *prometheus.CounterVec
	buildFailures *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
	orderValue    prometheus.Histogram
}

// NewCollector creates a collector with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		pizzasBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pizzas_built_total",
				Help: "Pizzas successfully assembled",
			},
			[]string{"strategy"},
		),
		buildFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pizza_build_failures_total",
				Help: "Pizza assemblies rejected by validation",
			},
			[]string{"strategy"},
		),
		ordersPlaced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_placed_total",
				Help: "Orders appended to the order log",
			},
		),
		orderValue: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_value",
				Help:    "Total price of placed orders",
				Buckets: prometheus.LinearBuckets(0, 10, 20),
			},
		),
	}

	c.registry.MustRegister(c.pizzasBuilt, c.buildFailures, c.ordersPlaced, c.orderValue)
	return c
}

// PizzaBuilt records a successful assembly for the given strategy.
func (c *Collector) PizzaBuilt(strategy string) {
	c.pizzasBuilt.WithLabelValues(strategy).Inc()
}

// BuildFailed records a rejected assembly for the given strategy.
func (c *Collector) BuildFailed(strategy string) {
	c.buildFailures.WithLabelValues(strategy).Inc()
}

// OrderPlaced records a placed order and observes its total price.
func (c *Collector) OrderPlaced(total decimal.Decimal) {
	c.ordersPlaced.Inc()
	value, _ := total.Float64()
	c.orderValue.Observe(value)
}

// Gather returns the current metric families for in-process inspection.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}
