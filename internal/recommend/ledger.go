package recommend

import "sync"

// InteractionKind identifies how a user interacted with a job posting.
type InteractionKind string

// Recognized interaction kinds.
const (
	InteractionView    InteractionKind = "view"
	InteractionApply   InteractionKind = "apply"
	InteractionSave    InteractionKind = "save"
	InteractionDismiss InteractionKind = "dismiss"
)

// DefaultInteractionWeight is the fallback weight applied when the
// ledger is asked to record a kind outside the fixed table.
const DefaultInteractionWeight = 1.0

// interactionWeights maps each kind to its signed accumulation weight.
// Magnitudes reflect signal strength (apply > save > view); dismiss is
// negative so repeated dismissals push a job ever further away.
var interactionWeights = map[InteractionKind]float64{
	InteractionView:    0.5,
	InteractionApply:   2.0,
	InteractionSave:    1.0,
	InteractionDismiss: -1.0,
}

// ValidInteraction reports whether kind is one of the recognized
// interaction kinds.
func ValidInteraction(kind InteractionKind) bool {
	_, ok := interactionWeights[kind]
	return ok
}

// InteractionKinds returns the recognized kinds in a stable order,
// for error messages at the HTTP boundary.
func InteractionKinds() []InteractionKind {
	return []InteractionKind{InteractionView, InteractionApply, InteractionSave, InteractionDismiss}
}

// Ledger is the per-user, per-job accumulated interaction matrix.
// Recording is additive: a third "view" on the same job adds another
// +0.5, so sustained weak engagement can outweigh a single strong
// signal over time. Weights are unclamped in both directions.
//
// All methods are safe for concurrent use; writes to the same
// (user, job) cell are serialized by the ledger mutex.
type Ledger struct {
	mu     sync.Mutex
	byUser map[string]map[string]float64
}

// NewLedger creates an empty interaction ledger.
func NewLedger() *Ledger {
	return &Ledger{byUser: make(map[string]map[string]float64)}
}

// Record accumulates the weight for kind onto the (userID, jobID) cell.
// Unknown kinds accumulate DefaultInteractionWeight rather than failing.
func (l *Ledger) Record(userID, jobID string, kind InteractionKind) {
	l.RecordWithDefault(userID, jobID, kind, DefaultInteractionWeight)
}

// RecordWithDefault is Record with a caller-supplied fallback weight for
// unknown kinds.
func (l *Ledger) RecordWithDefault(userID, jobID string, kind InteractionKind, fallback float64) {
	weight, ok := interactionWeights[kind]
	if !ok {
		weight = fallback
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	jobs := l.byUser[userID]
	if jobs == nil {
		jobs = make(map[string]float64)
		l.byUser[userID] = jobs
	}
	jobs[jobID] += weight
}

// Interactions returns a copy of the accumulated weights for one user.
// The copy is safe to read without holding the ledger lock; an unknown
// user yields an empty map.
func (l *Ledger) Interactions(userID string) map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]float64, len(l.byUser[userID]))
	for jobID, w := range l.byUser[userID] {
		out[jobID] = w
	}
	return out
}

// HasHistory reports whether the user has at least one ledger entry.
func (l *Ledger) HasHistory(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byUser[userID]) > 0
}

// TotalsByJob sums accumulated weights per job across all users. Used
// by the insights view as an engagement signal.
func (l *Ledger) TotalsByJob() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	totals := make(map[string]float64)
	for _, jobs := range l.byUser {
		for jobID, w := range jobs {
			totals[jobID] += w
		}
	}
	return totals
}

// snapshot copies the whole matrix for lock-free scoring.
func (l *Ledger) snapshot() map[string]map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]map[string]float64, len(l.byUser))
	for userID, jobs := range l.byUser {
		cp := make(map[string]float64, len(jobs))
		for jobID, w := range jobs {
			cp[jobID] = w
		}
		out[userID] = cp
	}
	return out
}
