package layout

import (
	"reflect"
	"testing"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sizes[T any](chunks [][]T) []int {
	out := make([]int, len(chunks))
	for i, c := range chunks {
		out[i] = len(c)
	}
	return out
}

func TestChunk_ConcreteSizeVectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, max int
		want   []int
	}{
		{19, 9, []int{7, 7, 5}},
		{12, 9, []int{6, 6}},
		{5, 9, []int{5}},
		{9, 9, []int{9}},
		{10, 9, []int{5, 5}},
		{1, 1, []int{1}},
		{7, 3, []int{3, 3, 1}},
	}

	for _, tc := range cases {
		got := sizes(Chunk(intRange(tc.n), tc.max))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Chunk(%d items, max %d) sizes = %v, want %v", tc.n, tc.max, got, tc.want)
		}
	}
}

func TestChunk_PreservesOrderLosslessly(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 40; n++ {
		for max := 1; max <= 12; max++ {
			items := intRange(n)
			chunks := Chunk(items, max)

			var flat []int
			for i, c := range chunks {
				if i < len(chunks)-1 && len(c) > max {
					t.Fatalf("n=%d max=%d chunk %d size %d exceeds max", n, max, i, len(c))
				}
				flat = append(flat, c...)
			}
			if !reflect.DeepEqual(flat, items) && !(len(flat) == 0 && n == 0) {
				t.Fatalf("n=%d max=%d concat mismatch: %v", n, max, flat)
			}
		}
	}
}

func TestChunk_LastChunkNeverLarger(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 60; n++ {
		for max := 1; max <= 15; max++ {
			chunks := Chunk(intRange(n), max)
			last := len(chunks[len(chunks)-1])
			for i := 0; i < len(chunks)-1; i++ {
				if len(chunks[i]) < last {
					t.Fatalf("n=%d max=%d: chunk %d (%d) smaller than last (%d)", n, max, i, len(chunks[i]), last)
				}
			}
		}
	}
}

func TestChunk_ClampsMaxPerChunk(t *testing.T) {
	t.Parallel()

	got := sizes(Chunk(intRange(3), 0))
	if !reflect.DeepEqual(got, []int{1, 1, 1}) {
		t.Fatalf("sizes = %v, want [1 1 1]", got)
	}
}

func TestChunk_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := Chunk([]int(nil), 5); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestSplitHead_HeadTakesExtra(t *testing.T) {
	t.Parallel()

	head, tail := SplitHead(intRange(7))
	if len(head) != 4 || len(tail) != 3 {
		t.Fatalf("sizes = %d/%d, want 4/3", len(head), len(tail))
	}
	if head[0] != 0 || tail[0] != 4 {
		t.Fatalf("order broken: head %v tail %v", head, tail)
	}

	head, tail = SplitHead(intRange(6))
	if len(head) != 3 || len(tail) != 3 {
		t.Fatalf("even split sizes = %d/%d, want 3/3", len(head), len(tail))
	}

	head, tail = SplitHead([]int{})
	if len(head) != 0 || len(tail) != 0 {
		t.Fatalf("empty split sizes = %d/%d", len(head), len(tail))
	}
}
