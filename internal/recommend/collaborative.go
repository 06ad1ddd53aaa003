package recommend

import (
	"math"
	"sort"
)

// collabCandidate is one collaborative recommendation before catalog
// lookup: the job and its raw accumulated neighbor score.
type collabCandidate struct {
	jobID string
	raw   float64
}

// collaborativeScores propagates neighbor interactions to jobs the
// target user has not touched. For each other user, similarity to the
// target is the correlation of their interaction weights over the jobs
// both have touched; only positively similar neighbors contribute, and
// each contributes similarity × weight per job. The target's own jobs
// are excluded from candidates regardless of sign, so a dismissed job
// can never resurface here.
//
// Returns at most topN candidates sorted by raw score descending. A
// user with no history gets an empty result (cold start).
func collaborativeScores(matrix map[string]map[string]float64, userID string, topN int) []collabCandidate {
	target := matrix[userID]
	if len(target) == 0 {
		return nil
	}

	similarities := make(map[string]float64)
	for otherID, other := range matrix {
		if otherID == userID {
			continue
		}
		if sim := userSimilarity(target, other); sim > 0 {
			similarities[otherID] = sim
		}
	}
	if len(similarities) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	for otherID, sim := range similarities {
		for jobID, weight := range matrix[otherID] {
			if _, seen := target[jobID]; seen {
				continue
			}
			scores[jobID] += sim * weight
		}
	}

	candidates := make([]collabCandidate, 0, len(scores))
	for jobID, raw := range scores {
		candidates = append(candidates, collabCandidate{jobID: jobID, raw: raw})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].raw != candidates[j].raw {
			return candidates[i].raw > candidates[j].raw
		}
		return candidates[i].jobID < candidates[j].jobID
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// userSimilarity computes the uncentered correlation of two interaction
// vectors over their common jobs: Σxy / (√Σx² · √Σy²). No overlap, or
// zero variance on either side, yields 0 rather than an error.
func userSimilarity(a, b map[string]float64) float64 {
	var sumXX, sumYY, sumXY float64
	common := false
	for jobID, x := range a {
		y, ok := b[jobID]
		if !ok {
			continue
		}
		common = true
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if !common || sumXX == 0 || sumYY == 0 {
		return 0
	}
	return sumXY / (math.Sqrt(sumXX) * math.Sqrt(sumYY))
}

// collabDisplayScore rescales a raw collaborative score into the same
// 0–100 range as content scores. The affine form maps a neutral raw
// score of 0 to 50: no evidence, not strongly negative.
func collabDisplayScore(raw float64) int {
	score := int(math.Round(raw*50 + 50))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
