package game

// completionTimeKey is the one required field of a performance record.
const completionTimeKey = "completion_time"

// defaultCompletionTime substitutes for a missing completion_time. Absence is
// treated as the worst observed performance so the difficulty loop can only
// bias downward, never stall.
const defaultCompletionTime float64 = 120

// PerformanceRecord carries the metrics a gameplay session reports after a
// completed maze. completion_time (seconds) is required; any additional
// metrics are kept in the history unvalidated.
type PerformanceRecord map[string]any

// CompletionTime returns the record's completion time in seconds, falling
// back to defaultCompletionTime when the field is absent or not numeric.
func (r PerformanceRecord) CompletionTime() float64 {
	v, ok := r[completionTimeKey]
	if !ok {
		return defaultCompletionTime
	}

	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return defaultCompletionTime
	}
}
