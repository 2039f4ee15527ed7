package metrics

import (
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// filteringGatherer wraps another Gatherer and drops metric families whose name starts
// with one of dropPrefixes. It keeps the Go runtime noise of the default registry out of
// the lookup metrics.
type filteringGatherer struct {
	inner        prometheus.Gatherer
	dropPrefixes []string
}

// Gather implements prometheus.Gatherer.
func (f filteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	mfs, err := f.inner.Gather()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(mfs, func(mf *io_prometheus_client.MetricFamily) bool {
		return f.dropped(mf.GetName())
	}), nil
}

func (f filteringGatherer) dropped(name string) bool {
	return slices.ContainsFunc(f.dropPrefixes, func(prefix string) bool {
		return strings.HasPrefix(name, prefix)
	})
}
