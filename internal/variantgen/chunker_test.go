package variantgen

import (
	"reflect"
	"testing"
)

func TestChunkSizes(t *testing.T) {
	tests := []struct {
		name  string
		total int
		max   int
		want  []int
	}{
		{"single partial chunk", 9, 10, []int{9}},
		{"exact chunk", 10, 10, []int{10}},
		{"remainder chunk", 25, 10, []int{10, 10, 5}},
		{"one over", 11, 10, []int{10, 1}},
		{"zero", 0, 10, nil},
		{"negative", -3, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkSizes(tt.total, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("chunkSizes(%d, %d) = %v, want %v", tt.total, tt.max, got, tt.want)
			}
		})
	}
}
