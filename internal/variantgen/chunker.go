package variantgen

// chunkSizes splits a total request count into chunks of at most max,
// the final chunk taking the remainder. Requesting 25 with max 10
// yields [10, 10, 5].
func chunkSizes(total, max int) []int {
	if total <= 0 {
		return nil
	}
	var sizes []int
	for total > max {
		sizes = append(sizes, max)
		total -= max
	}
	return append(sizes, total)
}
