package survey

import (
	"math/rand"
	"sort"
	"time"
)

// SelectSubset picks count questions for presentation of a random survey.
// Every pinned question is always included; the remainder is sampled
// without replacement from the unpinned questions. The result preserves
// the original question order.
//
// A question whose condition source did not make the subset is dropped and
// replaced with another eligible question when one exists; a pinned
// question in that situation is a contradiction the editor should have
// rejected, reported here as a *PinnedOverflowError.
//
// rng may be nil, in which case sampling is time-seeded. Publish validation
// already guards the pinned count, but the selector re-checks since it can
// be reached by callers other than the editor.
func SelectSubset(questions []Question, count int, rng *rand.Rand) ([]Question, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if count > len(questions) {
		count = len(questions)
	}

	var pinned, unpinned []Question
	for _, q := range questions {
		if q.IsPinned {
			pinned = append(pinned, q)
		} else {
			unpinned = append(unpinned, q)
		}
	}
	if len(pinned) > count {
		return nil, &PinnedOverflowError{PinnedCount: len(pinned), RandomCount: count}
	}

	pool := append([]Question(nil), unpinned...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	selected := make(map[string]Question, count)
	for _, q := range pinned {
		selected[q.LocalID] = q
	}
	next := 0
	for len(selected) < count && next < len(pool) {
		selected[pool[next].LocalID] = pool[next]
		next++
	}

	// Drop questions orphaned by an unselected condition source. Dropping
	// one question can orphan another, so iterate to a fixed point. Freed
	// slots are refilled from the remaining pool when an eligible question
	// exists.
	for {
		removed := false
		for id, q := range selected {
			if q.Condition == nil {
				continue
			}
			if _, ok := selected[q.Condition.DependsOn]; ok {
				continue
			}
			if q.IsPinned {
				return nil, &PinnedOverflowError{QuestionID: q.LocalID}
			}
			delete(selected, id)
			removed = true
		}
		if !removed {
			break
		}
		for len(selected) < count && next < len(pool) {
			candidate := pool[next]
			next++
			if candidate.Condition != nil {
				if _, ok := selected[candidate.Condition.DependsOn]; !ok {
					continue
				}
			}
			selected[candidate.LocalID] = candidate
		}
	}

	out := make([]Question, 0, len(selected))
	for _, q := range selected {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
