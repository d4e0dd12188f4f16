package achievement

import "time"

// Record is the persisted per-user state for one badge. Earned is
// monotonic: once set it is never cleared by evaluation, and EarnedDate is
// written exactly once, when Earned flips to true. Progress is meaningful
// only while the badge is unearned.
type Record struct {
	ID         string     `bson:"achievementId" json:"achievementId"`
	Earned     bool       `bson:"earned" json:"earned"`
	Progress   float64    `bson:"progress" json:"progress"`
	EarnedDate *time.Time `bson:"earnedDate,omitempty" json:"earnedDate,omitempty"`
}

// Result is the outcome of one evaluation pass.
type Result struct {
	// Records replaces the caller's stored set: updated entries, untouched
	// already-earned entries, and passthrough entries for ids no longer in
	// the catalog.
	Records []Record
	// NewlyEarned lists badges that flipped to earned this pass, in
	// catalog order. Notification order follows this order.
	NewlyEarned []Badge
}

// Evaluate runs every catalog badge against the snapshot and merges the
// outcome with prior records. Already-earned badges are skipped without
// re-running their predicates, which guarantees monotonicity even if the
// underlying history is later corrected downward. The prior slice is never
// mutated; callers get a fresh slice back.
//
// Evaluate is idempotent: a second pass over its own output with the same
// snapshot earns nothing new and changes no record.
func Evaluate(catalog []Badge, snap Snapshot, prior []Record, now time.Time) Result {
	byID := make(map[string]int, len(prior))
	records := make([]Record, 0, len(prior)+len(catalog))
	for _, r := range prior {
		if _, ok := byID[r.ID]; ok {
			// At most one record per badge id; the first one wins.
			continue
		}
		byID[r.ID] = len(records)
		records = append(records, r)
	}

	var newlyEarned []Badge
	for _, badge := range catalog {
		idx, exists := byID[badge.ID]
		if exists && records[idx].Earned {
			continue
		}

		if badge.Earned(snap) {
			earnedAt := now
			rec := Record{ID: badge.ID, Earned: true, Progress: 100, EarnedDate: &earnedAt}
			if exists {
				records[idx] = rec
			} else {
				byID[badge.ID] = len(records)
				records = append(records, rec)
			}
			newlyEarned = append(newlyEarned, badge)
			continue
		}

		progress, ok := badge.Progress(snap)
		if !ok {
			continue
		}
		if exists {
			records[idx].Progress = progress
		} else if progress > 0 {
			byID[badge.ID] = len(records)
			records = append(records, Record{ID: badge.ID, Progress: progress})
		}
	}

	return Result{Records: records, NewlyEarned: newlyEarned}
}
