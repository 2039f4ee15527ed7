package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

const (
	FOUND     = "FOUND"
	NOTFOUND  = "NOT_FOUND"
	INVALID   = "INVALID"
	ERROR     = "ERROR"
	ENRICHED  = "ENRICHED"
	UNKNOWN   = "UNKNOWN"
	namespace = "geoip_lookup"
)

var latencyBuckets = []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005, .01, .05}

// Instrumentation publishes Prometheus metrics for database lookups and enrichment checks.
type Instrumentation struct {
	lookupTotals   *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	checkTotals    *prometheus.CounterVec
	checkDuration  *prometheus.HistogramVec
	inFlight       *prometheus.GaugeVec
	databaseInfo   *prometheus.GaugeVec
}

// NewInstrumentation registers all metric vectors.
func NewInstrumentation(reg prometheus.Registerer) *Instrumentation {
	inst := &Instrumentation{
		lookupTotals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total database lookups by database and result",
		}, []string{"database", "result"}),
		lookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Database lookup latency",
			Buckets:   latencyBuckets,
		}, []string{"database", "result"}),
		checkTotals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total enrichment checks by authority and result",
		}, []string{"authority", "result"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "End-to-end enrichment check latency",
			Buckets:   []float64{.00005, .0001, .0005, .001, .002, .005, .01, .025, .05, .1},
		}, []string{"authority", "result"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inflight_checks",
			Help:      "Active enrichment checks",
		}, []string{"authority"}),
		databaseInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_info",
			Help:      "Loaded databases, always 1",
		}, []string{"database", "edition", "segments"}),
	}

	reg.MustRegister(
		inst.lookupTotals,
		inst.lookupDuration,
		inst.checkTotals,
		inst.checkDuration,
		inst.inFlight,
		inst.databaseInfo,
	)
	return inst
}

// LookupResult classifies a lookup error into a result label.
func LookupResult(err error) string {
	switch {
	case err == nil:
		return FOUND
	case errors.Is(err, legacydb.ErrLookupMiss):
		return NOTFOUND
	case errors.Is(err, ipv4.ErrInvalidAddress):
		return INVALID
	default:
		return ERROR
	}
}

// ObserveLookup records a single database lookup and its latency.
func (i *Instrumentation) ObserveLookup(database string, err error, duration time.Duration) {
	if i == nil {
		return
	}

	result := LookupResult(err)
	i.lookupTotals.WithLabelValues(database, result).Inc()
	i.lookupDuration.WithLabelValues(database, result).Observe(duration.Seconds())
}

// ObserveCheck records an enrichment check outcome. A check is ENRICHED when at least one
// database knew the client address.
func (i *Instrumentation) ObserveCheck(authority string, enriched bool, duration time.Duration) {
	if i == nil {
		return
	}

	result := UNKNOWN
	if enriched {
		result = ENRICHED
	}
	i.checkTotals.WithLabelValues(authority, result).Inc()
	i.checkDuration.WithLabelValues(authority, result).Observe(duration.Seconds())
}

// InFlight increments or decrements the in-flight gauge.
func (i *Instrumentation) InFlight(authority string, delta float64) {
	if i == nil {
		return
	}

	if delta == 0 {
		return
	}
	if delta > 0 {
		i.inFlight.WithLabelValues(authority).Add(delta)
		return
	}
	i.inFlight.WithLabelValues(authority).Sub(-delta)
}

// ObserveDatabase publishes the structure of a loaded database.
func (i *Instrumentation) ObserveDatabase(database string, meta legacydb.Metadata) {
	if i == nil {
		return
	}
	i.databaseInfo.WithLabelValues(database, meta.Edition.String(), strconv.FormatUint(uint64(meta.Segments), 10)).Set(1)
}
