// Package layout distributes weighted items across a fixed number of columns.
package layout

// LowWaterMark is the column load below which a column is filled before any
// balancing happens. A fresh column accepts items until its total reaches it.
const LowWaterMark = 5

// Assign returns, for each item in order, the index of the column it is placed
// in. Columns are scanned left to right; the first column whose total is below
// LowWaterMark takes the item, otherwise the column with the smallest total
// does, the leftmost winning ties. A non-positive columnCount places nothing
// and returns nil.
func Assign(weights []int, columnCount int) []int {
	if columnCount <= 0 || len(weights) == 0 {
		return nil
	}

	totals := make([]int, columnCount)
	assignment := make([]int, len(weights))
	for i, w := range weights {
		target := pick(totals)
		totals[target] += w
		assignment[i] = target
	}
	return assignment
}

func pick(totals []int) int {
	best := 0
	for i, total := range totals {
		if total < LowWaterMark {
			return i
		}
		if total < totals[best] {
			best = i
		}
	}
	return best
}

// Partition groups items into at most columnCount columns using Assign. Items
// keep their relative input order inside a column and empty columns are
// dropped, so the result may hold fewer than columnCount columns.
func Partition[T any](items []T, weight func(T) int, columnCount int) [][]T {
	weights := make([]int, len(items))
	for i, item := range items {
		weights[i] = weight(item)
	}

	assignment := Assign(weights, columnCount)
	if assignment == nil {
		return nil
	}

	buckets := make([][]T, columnCount)
	for i, col := range assignment {
		buckets[col] = append(buckets[col], items[i])
	}

	columns := make([][]T, 0, columnCount)
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			columns = append(columns, bucket)
		}
	}
	return columns
}
