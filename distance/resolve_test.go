package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Metric
		wantErr bool
	}{
		{"FullEuclidean", "euclidean", MetricEuclidean, false},
		{"FullCosine", "cosine", MetricCosine, false},
		{"PrefixEucl", "eucl", MetricEuclidean, false},
		{"PrefixE", "e", MetricEuclidean, false},
		{"PrefixCos", "cos", MetricCosine, false},
		{"PrefixC", "c", MetricCosine, false},
		{"Empty", "", 0, true},
		{"Unknown", "manhattan", 0, true},
		{"Overlong", "euclideanish", 0, true},
		{"CaseSensitive", "Euclidean", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
