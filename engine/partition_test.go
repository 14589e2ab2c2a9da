package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		n, p int
		want []Assignment
	}{
		{"Exact", 6, 3, []Assignment{{0, 2}, {2, 2}, {4, 2}}},
		{"Remainder", 5, 2, []Assignment{{0, 3}, {3, 2}}},
		{"SingleWorker", 4, 1, []Assignment{{0, 4}}},
		{"MoreWorkersThanItems", 2, 4, []Assignment{{0, 1}, {1, 1}, {2, 0}, {2, 0}}},
		{"Empty", 0, 3, []Assignment{{0, 0}, {0, 0}, {0, 0}}},
		{"HeavyRemainder", 10, 4, []Assignment{{0, 3}, {3, 3}, {6, 3}, {9, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.n, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartitionInvalid(t *testing.T) {
	_, err := Partition(5, 0)
	require.ErrorIs(t, err, ErrInvalidWorkerCount)

	_, err = Partition(-1, 2)
	require.Error(t, err)
}

// Every (n, p) combination must cover [0, n) exactly with slices no larger
// than ceil(n/p).
func TestPartitionProperties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for p := 1; p <= 9; p++ {
			parts, err := Partition(n, p)
			require.NoError(t, err)
			require.Len(t, parts, p)

			require.NoError(t, ValidateAssignments(parts, n), "n=%d p=%d", n, p)

			base := (n + p - 1) / p
			cur := 0
			for _, a := range parts {
				assert.Equal(t, cur, a.Start, "n=%d p=%d", n, p)
				assert.LessOrEqual(t, a.Count, base, "n=%d p=%d", n, p)
				cur += a.Count
			}
			assert.Equal(t, n, cur, "n=%d p=%d", n, p)
		}
	}
}

func TestValidateAssignments(t *testing.T) {
	tests := []struct {
		name    string
		parts   []Assignment
		n       int
		wantErr bool
	}{
		{"Exact", []Assignment{{0, 3}, {3, 2}}, 5, false},
		{"EmptySlices", []Assignment{{0, 1}, {1, 0}, {1, 1}}, 2, false},
		{"Nothing", nil, 0, false},
		{"Overlap", []Assignment{{0, 3}, {2, 3}}, 5, true},
		{"Gap", []Assignment{{0, 2}, {3, 2}}, 5, true},
		{"Short", []Assignment{{0, 2}}, 5, true},
		{"Overrun", []Assignment{{0, 6}}, 5, true},
		{"NegativeStart", []Assignment{{-1, 6}}, 5, true},
		{"NegativeCount", []Assignment{{0, -5}}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignments(tt.parts, tt.n)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
