package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	name   string
	weight int
}

func cardWeight(c card) int { return c.weight }

func cards(weights ...int) []card {
	out := make([]card, len(weights))
	for i, w := range weights {
		out[i] = card{name: fmt.Sprintf("c%d", i+1), weight: w}
	}
	return out
}

func names(columns [][]card) [][]string {
	out := make([][]string, len(columns))
	for i, col := range columns {
		for _, c := range col {
			out[i] = append(out[i], c.name)
		}
	}
	return out
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		columns int
		want    [][]string
	}{
		{
			name:    "unit weights fill the first column to the low water mark",
			weights: []int{1, 1, 1, 1, 1, 1},
			columns: 2,
			want:    [][]string{{"c1", "c2", "c3", "c4", "c5"}, {"c6"}},
		},
		{
			name:    "single heavy card uses one column",
			weights: []int{10},
			columns: 3,
			want:    [][]string{{"c1"}},
		},
		{
			name:    "heavy cards spread once every column is above the mark",
			weights: []int{6, 6, 6, 2, 3},
			columns: 3,
			want:    [][]string{{"c1", "c4"}, {"c2", "c5"}, {"c3"}},
		},
		{
			name:    "ties go to the leftmost column",
			weights: []int{5, 5, 1},
			columns: 2,
			want:    [][]string{{"c1", "c3"}, {"c2"}},
		},
		{
			name:    "strictly smaller total wins",
			weights: []int{7, 5, 1, 1},
			columns: 2,
			want:    [][]string{{"c1"}, {"c2", "c3", "c4"}},
		},
		{
			name:    "zero weights never leave the first column",
			weights: []int{0, 0, 0},
			columns: 2,
			want:    [][]string{{"c1", "c2", "c3"}},
		},
		{
			name:    "single column takes everything",
			weights: []int{3, 9, 2},
			columns: 1,
			want:    [][]string{{"c1", "c2", "c3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(cards(tt.weights...), cardWeight, tt.columns)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestPartitionEmpty(t *testing.T) {
	assert.Empty(t, Partition(nil, cardWeight, 3))
	assert.Empty(t, Partition([]card{}, cardWeight, 3))
	assert.Empty(t, Partition(cards(1, 2, 3), cardWeight, 0))
	assert.Empty(t, Partition(cards(1, 2, 3), cardWeight, -1))
}

func TestAssign(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1}, Assign([]int{1, 1, 1, 1, 1, 1}, 2))
	assert.Equal(t, []int{0, 1, 2, 0, 1}, Assign([]int{6, 6, 6, 2, 3}, 3))
	assert.Nil(t, Assign([]int{1}, 0))
	assert.Nil(t, Assign(nil, 4))
}

func TestPartitionInvariants(t *testing.T) {
	inputs := [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{9, 1, 9, 1, 9, 1},
		{4, 4, 4, 4, 4, 4, 4, 4},
		{12, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}

	for _, weights := range inputs {
		for columns := 1; columns <= 5; columns++ {
			t.Run(fmt.Sprintf("%v/%d", weights, columns), func(t *testing.T) {
				items := cards(weights...)
				got := Partition(items, cardWeight, columns)

				require.LessOrEqual(t, len(got), columns)

				position := make(map[string]int, len(items))
				for i, c := range items {
					position[c.name] = i
				}

				seen := 0
				for _, col := range got {
					require.NotEmpty(t, col)
					for i := 1; i < len(col); i++ {
						assert.Less(t, position[col[i-1].name], position[col[i].name])
					}
					seen += len(col)
				}
				assert.Equal(t, len(items), seen)

				again := Partition(items, cardWeight, columns)
				assert.Equal(t, got, again)
			})
		}
	}
}
