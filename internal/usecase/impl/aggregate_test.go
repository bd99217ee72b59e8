package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "single rating", ratings: []int{4}, want: 4},
		{name: "exact mean", ratings: []int{5, 3}, want: 4},
		{name: "rounded to two decimals", ratings: []int{5, 4, 4}, want: 4.33},
		{name: "rounds up", ratings: []int{5, 5, 4}, want: 4.67},
		{name: "all fives", ratings: []int{5, 5, 5, 5}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := averageRating(tt.ratings)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.0001)
		})
	}
}

func TestAverageRating_EmptySet(t *testing.T) {
	assert.Nil(t, averageRating(nil))
	assert.Nil(t, averageRating([]int{}))
}
