package attendance

// Status is an attendance state carrying an explicit severity order. When a
// student meets several classes on the same day the day collapses to the worst
// status, so the order is a total one rather than magic numbers at call sites.
type Status string

// Attendance states, worst first.
const (
	StatusAbsent    Status = "absent"
	StatusLate      Status = "late"
	StatusPresent   Status = "present"
	StatusExcused   Status = "excused"
	StatusScheduled Status = "scheduled"
)

var severityByStatus = map[Status]int{
	StatusAbsent:    0,
	StatusLate:      1,
	StatusPresent:   2,
	StatusExcused:   3,
	StatusScheduled: 4,
}

// Known reports whether s is one of the five attendance states.
func (s Status) Known() bool {
	_, ok := severityByStatus[s]
	return ok
}

// Severity returns the position of s in the total order; lower is worse.
// Unknown states rank after scheduled so they never win an aggregation.
func (s Status) Severity() int {
	if severity, ok := severityByStatus[s]; ok {
		return severity
	}
	return len(severityByStatus)
}

// Worst picks the highest-severity status from the list. Ties keep the first
// encountered value; an empty list yields scheduled.
func Worst(statuses []Status) Status {
	worst := StatusScheduled
	best := worst.Severity()
	for _, status := range statuses {
		if severity := status.Severity(); severity < best {
			worst = status
			best = severity
		}
	}
	return worst
}
