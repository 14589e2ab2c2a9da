package distance

import (
	"fmt"
	"strings"
)

// metricNames lists the selectable metrics in resolution order.
var metricNames = []struct {
	name   string
	metric Metric
}{
	{"euclidean", MetricEuclidean},
	{"cosine", MetricCosine},
}

// Resolve matches name against the known metric names and returns the
// uniquely selected metric. Any non-empty prefix of a metric name matches,
// so "eucl" and "e" select Euclidean. Zero matches or more than one match
// is an error.
func Resolve(name string) (Metric, error) {
	if name == "" {
		return 0, fmt.Errorf("empty distance metric name")
	}

	var (
		found   Metric
		matches int
	)
	for _, m := range metricNames {
		if strings.HasPrefix(m.name, name) {
			found = m.metric
			matches++
		}
	}

	switch matches {
	case 0:
		return 0, fmt.Errorf("unknown distance metric %q", name)
	case 1:
		return found, nil
	default:
		return 0, fmt.Errorf("ambiguous distance metric %q", name)
	}
}
