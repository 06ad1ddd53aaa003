package recommend

import (
	"math"
	"sort"
	"strings"
)

// maxVocabulary caps the fitted vocabulary at the most frequent terms,
// mirroring the vectorizer settings the engine was tuned with.
const maxVocabulary = 5000

// Index is an immutable fitted TF-IDF index over one catalog snapshot.
// It is built by FitIndex and never mutated afterwards; refitting
// produces a fresh Index that the engine publishes atomically.
type Index struct {
	jobs    []Job
	byID    map[string]int
	idf     map[string]float64
	vectors []map[string]float64
}

// FitIndex builds a TF-IDF index over the given catalog. Terms are
// unigrams and bigrams of normalized job documents; inverse document
// frequency is smoothed (ln((1+n)/(1+df))+1) and vectors are
// L2-normalized so scoring reduces to a dot product.
//
// Returns a *FitError when the catalog is empty or every document
// normalizes to nothing.
func FitIndex(jobs []Job) (*Index, error) {
	if len(jobs) == 0 {
		return nil, &FitError{Reason: "catalog is empty"}
	}

	docs := make([][]string, len(jobs))
	byID := make(map[string]int, len(jobs))
	df := make(map[string]int)
	total := make(map[string]int)
	for i, job := range jobs {
		terms := extractTerms(JobDocument(job))
		docs[i] = terms
		byID[job.ID] = i
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			total[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}
	if len(df) == 0 {
		return nil, &FitError{Reason: "no extractable vocabulary"}
	}

	vocab := capVocabulary(total, maxVocabulary)

	idf := make(map[string]float64, len(vocab))
	n := float64(len(jobs))
	for term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]map[string]float64, len(jobs))
	for i, terms := range docs {
		vectors[i] = vectorize(terms, vocab, idf)
	}

	return &Index{jobs: jobs, byID: byID, idf: idf, vectors: vectors}, nil
}

// Score projects the user profile into the fitted vector space and
// returns the cosine similarity against every fitted job, in catalog
// order. Out-of-vocabulary query terms are ignored; a query that shares
// no vocabulary with a job scores 0 for that job.
func (ix *Index) Score(profile UserProfile) []JobScore {
	terms := extractTerms(UserDocument(profile))
	vocab := make(map[string]struct{}, len(ix.idf))
	for term := range ix.idf {
		vocab[term] = struct{}{}
	}
	query := vectorize(terms, vocab, ix.idf)

	scores := make([]JobScore, len(ix.jobs))
	for i, vec := range ix.vectors {
		scores[i] = JobScore{JobID: ix.jobs[i].ID, Similarity: dot(query, vec)}
	}
	return scores
}

// Jobs returns the catalog snapshot this index was fitted on.
func (ix *Index) Jobs() []Job {
	return ix.jobs
}

// JobByID looks up a fitted job. The second return is false for jobs
// unknown to this snapshot.
func (ix *Index) JobByID(id string) (Job, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return Job{}, false
	}
	return ix.jobs[i], true
}

// Len returns the number of fitted jobs.
func (ix *Index) Len() int {
	return len(ix.jobs)
}

// extractTerms splits a normalized document into vectorizer terms:
// unigrams of at least two runes plus bigrams of adjacent unigrams
// (bigrams are what let compound terms like "machine learning" carry
// weight as a unit).
func extractTerms(doc string) []string {
	fields := strings.Fields(doc)
	unigrams := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			unigrams = append(unigrams, f)
		}
	}
	terms := make([]string, 0, 2*len(unigrams))
	terms = append(terms, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		terms = append(terms, unigrams[i]+" "+unigrams[i+1])
	}
	return terms
}

// capVocabulary keeps the max most frequent terms, breaking frequency
// ties alphabetically so a fit over the same catalog is reproducible.
func capVocabulary(total map[string]int, max int) map[string]struct{} {
	vocab := make(map[string]struct{}, len(total))
	if len(total) <= max {
		for term := range total {
			vocab[term] = struct{}{}
		}
		return vocab
	}

	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	for _, term := range terms[:max] {
		vocab[term] = struct{}{}
	}
	return vocab
}

// vectorize builds an L2-normalized TF-IDF vector for a term sequence,
// restricted to the fitted vocabulary.
func vectorize(terms []string, vocab map[string]struct{}, idf map[string]float64) map[string]float64 {
	tf := make(map[string]float64)
	for _, t := range terms {
		if _, ok := vocab[t]; ok {
			tf[t]++
		}
	}
	var norm float64
	for t, f := range tf {
		w := f * idf[t]
		tf[t] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for t := range tf {
			tf[t] /= norm
		}
	}
	return tf
}

// dot computes the dot product of two sparse vectors, iterating the
// smaller one. Both sides are L2-normalized, so this is the cosine
// similarity.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for t, w := range a {
		if v, ok := b[t]; ok {
			sum += w * v
		}
	}
	return sum
}
