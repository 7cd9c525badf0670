package timeline

import (
	"sort"
	"time"

	"github.com/codeready-toolchain/traceline/pkg/models"
)

// parseTimestamp accepts the ISO-8601 forms agents actually emit:
// RFC3339 with or without sub-second precision, and the naive variant
// without a zone offset (treated as UTC).
func parseTimestamp(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MergeChronological combines events from any number of agent logs into
// one sequence sorted by timestamp ascending. The sort is stable, and an
// event with a missing or unparsable timestamp compares equal to every
// other event, so it stays exactly where it stood relative to its
// neighbors in the input order. Given a fixed input order the result is
// fully deterministic, no matter how the source logs were concatenated.
func MergeChronological(events []models.Event) []models.Event {
	merged := make([]models.Event, len(events))
	copy(merged, events)

	times := make([]time.Time, len(merged))
	parsed := make([]bool, len(merged))
	for i, e := range merged {
		times[i], parsed[i] = parseTimestamp(e.Timestamp)
	}

	idx := make([]int, len(merged))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if !parsed[i] || !parsed[j] {
			return false
		}
		return times[i].Before(times[j])
	})

	out := make([]models.Event, len(merged))
	for pos, i := range idx {
		out[pos] = merged[i]
	}
	return out
}
