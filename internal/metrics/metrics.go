package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct {
	RecordsGenerated *prometheus.CounterVec
	Coordinates      *prometheus.CounterVec
	WKBBytes         prometheus.Histogram
	EncodeSeconds    *prometheus.HistogramVec
	VerifyFailures   prometheus.Counter
	RecordsPublished prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RecordsGenerated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "fixturegen_records_generated_total",
			Help: "Total number of generated fixture records.",
		}, []string{"kind"}),
		Coordinates: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "fixturegen_coordinates_total",
			Help: "Total number of coordinates held by generated geometries.",
		}, []string{"kind"}),
		WKBBytes: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "fixturegen_wkb_bytes",
			Help:    "Size of the encoded WKB of each record.",
			Buckets: prometheus.ExponentialBuckets(16, 2, 10),
		}),
		EncodeSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fixturegen_encode_duration_seconds",
			Help:    "Duration of encoding one geometry to WKB and WKT.",
			Buckets: prometheus.DefBuckets,
		}, []string{"codec"}),
		VerifyFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "fixturegen_verify_failures_total",
			Help: "Total number of fixture tables rejected by verification.",
		}),
		RecordsPublished: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "fixturegen_records_published",
			Help: "Number of records stored by the last publication.",
		}),
	}
}

// Text gathers reg and renders it in the text exposition format read by the
// node exporter textfile collector.
func Text(reg prometheus.Gatherer) ([]byte, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}

	return buf.Bytes(), nil
}
