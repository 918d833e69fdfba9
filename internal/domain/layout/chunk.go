// Package layout partitions ordered collections into the display chunks
// the report templates page over. Two remainder policies exist because
// different templates want the short chunk in different places.
package layout

// Chunk splits items into the fewest chunks that each fit maxPerChunk,
// keeping all chunks but the last equal size. The final chunk absorbs the
// remainder, so it is the same size or smaller, never larger. Order is
// preserved and no item is dropped or duplicated.
//
// 19 items with max 9 → 3 chunks → sizes [7, 7, 5].
func Chunk[T any](items []T, maxPerChunk int) [][]T {
	if maxPerChunk < 1 {
		maxPerChunk = 1
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) <= maxPerChunk {
		return [][]T{items}
	}

	numChunks := ceilDiv(len(items), maxPerChunk)
	chunkSize := ceilDiv(len(items), numChunks)

	out := make([][]T, 0, numChunks)
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}

	return out
}

// SplitHead divides items into exactly two parts with the larger part
// first; on odd totals the head takes the extra item.
func SplitHead[T any](items []T) ([]T, []T) {
	head := ceilDiv(len(items), 2)
	return items[:head], items[head:]
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
