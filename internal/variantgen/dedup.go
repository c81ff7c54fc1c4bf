package variantgen

// seenSet tracks variant strings already accepted in a run. It is an
// explicit value threaded through merge and recursion; it is never
// touched while chunk calls are in flight.
type seenSet map[string]struct{}

// mergeChunks folds chunk outputs into per-difficulty lists in
// chunk-submission order, keeping the first occurrence of each
// distinct variant string. The set is global across difficulties:
// a duplicate string surfacing under a second difficulty loses to
// whichever difficulty produced it first.
func mergeChunks(jobs []chunkJob, results [][]Record, seen seenSet) map[Difficulty][]Record {
	byDifficulty := make(map[Difficulty][]Record)
	for i, job := range jobs {
		for _, rec := range results[i] {
			if _, dup := seen[rec.Variant]; dup {
				continue
			}
			seen[rec.Variant] = struct{}{}
			byDifficulty[job.difficulty] = append(byDifficulty[job.difficulty], rec)
		}
	}
	return byDifficulty
}
