package scheduler

import "github.com/averyhall/tempo/internal/domain"

// ConflictResult reports whether a candidate interval collides with existing
// commitments and, if so, the most protected tier among them.
type ConflictResult struct {
	HasConflict  bool
	BlockingTier domain.Tier
	With         string
}

// Conflicts checks a candidate interval against busy events. Overlap is
// strict: touching boundaries do not conflict. When several events overlap
// the candidate, the result carries the highest tier among them.
func Conflicts(candidate domain.TimeInterval, busy []domain.BusyEvent) ConflictResult {
	var res ConflictResult
	for _, ev := range busy {
		if !candidate.Overlaps(ev.Interval) {
			continue
		}
		if !res.HasConflict || domain.MaxTier(ev.Tier, res.BlockingTier) == ev.Tier {
			res.BlockingTier = ev.Tier
			res.With = ev.Title
		}
		res.HasConflict = true
	}
	return res
}
