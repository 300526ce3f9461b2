package service

import "math/rand"

// splitIntoGroups partitions eligible users into coffee chat groups of
// two or three members. The shuffle is uniformly random and not
// reproducible; callers that need a deterministic partition test
// chunkGroups directly.
func splitIntoGroups(users []string) [][]string {
	if len(users) < 2 {
		return nil
	}

	shuffled := make([]string, len(users))
	copy(shuffled, users)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return chunkGroups(shuffled)
}

// chunkGroups forms groups from an already-shuffled list. The first
// half of the list is chunked into pairs, the second half into triples.
// Chunk remainders are pooled: a single leftover joins the last formed
// group (making a group of 3 or 4), two or more leftovers form a group
// of their own.
func chunkGroups(shuffled []string) [][]string {
	pairHalf := shuffled[:len(shuffled)/2]
	tripleHalf := shuffled[len(shuffled)/2:]

	var groups [][]string
	var leftovers []string

	for i := 0; i < len(tripleHalf); i += 3 {
		chunk := tripleHalf[i:min(i+3, len(tripleHalf))]
		if len(chunk) == 3 {
			groups = append(groups, append([]string(nil), chunk...))
		} else {
			leftovers = append(leftovers, chunk...)
		}
	}

	for i := 0; i < len(pairHalf); i += 2 {
		chunk := pairHalf[i:min(i+2, len(pairHalf))]
		if len(chunk) == 2 {
			groups = append(groups, append([]string(nil), chunk...))
		} else {
			leftovers = append(leftovers, chunk...)
		}
	}

	switch {
	case len(leftovers) == 0:
	case len(groups) == 0:
		// Both halves were too small to form a chunk (2 or 3 users in
		// total), so the leftover pool is the group.
		groups = append(groups, leftovers)
	case len(leftovers) == 1:
		groups[len(groups)-1] = append(groups[len(groups)-1], leftovers[0])
	default:
		groups = append(groups, leftovers)
	}

	return groups
}
