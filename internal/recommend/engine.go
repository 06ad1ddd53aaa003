package recommend

import (
	"sort"
	"sync"
)

// DefaultContentWeight is the share of the blended score contributed by
// content similarity when the caller does not override it.
const DefaultContentWeight = 0.7

// DefaultTopN is the recommendation count used when the caller asks for
// zero or a negative number of results.
const DefaultTopN = 10

// Engine is the recommendation service: a fitted content index plus the
// interaction ledger, shared across requests for the life of the
// process. Construct one with NewEngine and inject it at the HTTP
// boundary; there is no package-level instance.
//
// Fit publishes a freshly built immutable Index under the engine lock,
// so concurrent readers always observe either the previous or the new
// snapshot, never a torn one.
type Engine struct {
	mu     sync.RWMutex
	index  *Index
	ledger *Ledger
}

// NewEngine creates an engine with an empty ledger and no fitted index.
// Score and Recommend fail with *NotReadyError until Fit succeeds.
func NewEngine() *Engine {
	return &Engine{ledger: NewLedger()}
}

// Fit builds a new index over the catalog and swaps it in atomically.
// On error the previously fitted index (if any) stays in place.
func (e *Engine) Fit(jobs []Job) error {
	index, err := FitIndex(jobs)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.index = index
	e.mu.Unlock()
	return nil
}

// Ready reports whether a catalog has been fitted.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index != nil
}

// Ledger exposes the interaction ledger (for the insights view and
// tests; handlers should go through RecordInteraction).
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// RecordInteraction accumulates one interaction into the ledger.
func (e *Engine) RecordInteraction(userID, jobID string, kind InteractionKind) {
	e.ledger.Record(userID, jobID, kind)
}

// Jobs returns the currently fitted catalog snapshot.
func (e *Engine) Jobs() ([]Job, error) {
	index, err := e.currentIndex()
	if err != nil {
		return nil, err
	}
	return index.Jobs(), nil
}

// JobByID looks up a job in the fitted snapshot.
func (e *Engine) JobByID(id string) (Job, bool, error) {
	index, err := e.currentIndex()
	if err != nil {
		return Job{}, false, err
	}
	job, ok := index.JobByID(id)
	return job, ok, nil
}

// ContentRecommendations scores the profile against every fitted job
// and returns the topN by cosine similarity. Scores are the similarity
// as a truncated 0–100 integer; ties keep catalog order.
func (e *Engine) ContentRecommendations(profile UserProfile, topN int) ([]Recommendation, error) {
	index, err := e.currentIndex()
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	scores := index.Score(profile)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Similarity > scores[j].Similarity
	})
	if len(scores) > topN {
		scores = scores[:topN]
	}

	recs := make([]Recommendation, 0, len(scores))
	for _, s := range scores {
		job, _ := index.JobByID(s.JobID)
		score := int(s.Similarity * 100) // truncate, not round
		recs = append(recs, Recommendation{
			Job:          job,
			MatchScore:   score,
			ContentScore: score,
		})
	}
	return recs, nil
}

// CollaborativeRecommendations returns up to topN jobs liked by users
// similar to userID, excluding anything userID already touched. The
// result is empty for users without history (cold start) and never
// contains jobs outside the fitted catalog.
func (e *Engine) CollaborativeRecommendations(userID string, topN int) ([]Recommendation, error) {
	index, err := e.currentIndex()
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	candidates := collaborativeScores(e.ledger.snapshot(), userID, topN)
	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		job, ok := index.JobByID(c.jobID)
		if !ok {
			continue // interaction on a job the current catalog no longer carries
		}
		score := collabDisplayScore(c.raw)
		recs = append(recs, Recommendation{
			Job:         job,
			MatchScore:  score,
			CollabScore: score,
		})
	}
	return recs, nil
}

// Recommend blends content and collaborative signals with the default
// content weight.
func (e *Engine) Recommend(profile UserProfile, userID string, topN int) ([]Recommendation, error) {
	return e.RecommendWeighted(profile, userID, topN, DefaultContentWeight)
}

// RecommendWeighted produces the hybrid ranking. Both signals are
// gathered over a topN*2 pool so the blend has a wider set to choose
// from than the final cut. Users without history (or an empty userID)
// fall back to pure content results. Jobs present in only one pool use
// 0 for the missing component.
func (e *Engine) RecommendWeighted(profile UserProfile, userID string, topN int, contentWeight float64) ([]Recommendation, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if contentWeight < 0 {
		contentWeight = 0
	} else if contentWeight > 1 {
		contentWeight = 1
	}

	content, err := e.ContentRecommendations(profile, topN*2)
	if err != nil {
		return nil, err
	}

	var collab []Recommendation
	if userID != "" && e.ledger.HasHistory(userID) {
		collab, err = e.CollaborativeRecommendations(userID, topN*2)
		if err != nil {
			return nil, err
		}
	}
	if len(collab) == 0 {
		if len(content) > topN {
			content = content[:topN]
		}
		return content, nil
	}

	// Union the two pools by job ID, content pool first so ties in the
	// final sort keep content ordering.
	merged := make([]Recommendation, 0, len(content)+len(collab))
	position := make(map[string]int, len(content))
	for _, rec := range content {
		position[rec.Job.ID] = len(merged)
		merged = append(merged, rec)
	}
	for _, rec := range collab {
		if i, ok := position[rec.Job.ID]; ok {
			merged[i].CollabScore = rec.CollabScore
		} else {
			rec.ContentScore = 0
			merged = append(merged, rec)
		}
	}

	for i := range merged {
		blended := float64(merged[i].ContentScore)*contentWeight +
			float64(merged[i].CollabScore)*(1-contentWeight)
		merged[i].MatchScore = int(blended)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].MatchScore > merged[j].MatchScore
	})
	if len(merged) > topN {
		merged = merged[:topN]
	}
	return merged, nil
}

func (e *Engine) currentIndex() (*Index, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.index == nil {
		return nil, &NotReadyError{}
	}
	return e.index, nil
}
