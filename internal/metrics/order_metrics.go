package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics exposes order intake counters and the order sum distribution.
type OrderMetrics struct {
	processed        *prometheus.CounterVec
	failed           *prometheus.CounterVec
	customersCreated prometheus.Counter
	orderSum         prometheus.Histogram
}

// NewOrderMetrics registers order metrics in registerer, reusing collectors
// registered earlier under the same names.
func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		processed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "simpleshop_orders_processed_total",
			Help: "Total number of orders processed, by customer kind",
		}, []string{"customer_kind", "new_customer"}),
		failed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "simpleshop_orders_failed_total",
			Help: "Total number of orders rejected or failed, by reason",
		}, []string{"reason"}),
		customersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "simpleshop_customers_created_total",
			Help: "Total number of customers created by order intake",
		}),
		orderSum: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "simpleshop_order_sum",
			Help:    "Distribution of processed order sums",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 5000, 10000},
		}),
	}
}

// OrderProcessed records a successfully processed order.
func (m *OrderMetrics) OrderProcessed(kind string, newCustomer bool, sum int64) {
	m.processed.WithLabelValues(kind, strconv.FormatBool(newCustomer)).Inc()
	if newCustomer {
		m.customersCreated.Inc()
	}
	m.orderSum.Observe(float64(sum))
}

// OrderFailed records a failed order with its reason label.
func (m *OrderMetrics) OrderFailed(reason string) {
	m.failed.WithLabelValues(reason).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
