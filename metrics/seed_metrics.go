package metrics

import "github.com/prometheus/client_golang/prometheus"

// SeedMetrics đếm số document đã ghi trong một lần seed
type SeedMetrics struct {
	inserted *prometheus.CounterVec
	cleared  *prometheus.CounterVec
}

func NewSeedMetrics(reg prometheus.Registerer) *SeedMetrics {
	m := &SeedMetrics{
		inserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_documents_inserted_total",
				Help: "Documents inserted by the seed tool",
			},
			[]string{"collection"},
		),
		cleared: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_documents_deleted_total",
				Help: "Documents removed by the seed tool before inserting",
			},
			[]string{"collection"},
		),
	}
	reg.MustRegister(m.inserted, m.cleared)
	return m
}

func (m *SeedMetrics) Inserted(collection string, n int) {
	if m == nil {
		return
	}
	m.inserted.WithLabelValues(collection).Add(float64(n))
}

func (m *SeedMetrics) Cleared(collection string, n int64) {
	if m == nil {
		return
	}
	m.cleared.WithLabelValues(collection).Add(float64(n))
}
