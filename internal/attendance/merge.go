package attendance

import (
	"fmt"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// ClassStatus is the per-class slice of a student's day.
type ClassStatus struct {
	ClassID       uint
	ClassName     string
	TeacherName   string
	ScheduledTime string
	Status        Status
}

// StudentDayStatus is the merged view of one student's day: the full per-class
// breakdown plus a single aggregate picked by severity.
type StudentDayStatus struct {
	StudentID   uint
	StudentName string
	Classes     []ClassStatus
	Status      Status
}

type rosterKey struct {
	studentID uint
	classID   uint
}

// MergeDay joins the expected roster against the day's attendance log. Roster
// entries with no logged record default to scheduled; the default lives only
// in the response and is never written back. Students appearing in several
// classes are grouped, keeping roster order, and their aggregate status is the
// worst per-class status. namesByStudent patches roster entries whose student
// name did not come joined; callers resolve those ids in one batch beforehand.
func MergeDay(roster []RosterEntry, records []models.AttendanceRecord, namesByStudent map[uint]string) ([]StudentDayStatus, error) {
	statusByKey := make(map[rosterKey]Status, len(records))
	for _, record := range records {
		if record.StudentID == 0 || record.ClassID == 0 || record.Date.IsZero() {
			return nil, fmt.Errorf("attendance record %d: %w", record.ID, ErrMissingJoinKey)
		}
		key := rosterKey{studentID: record.StudentID, classID: record.ClassID}
		if _, exists := statusByKey[key]; !exists {
			statusByKey[key] = Status(record.Status)
		}
	}

	indexByStudent := make(map[uint]int, len(roster))
	merged := make([]StudentDayStatus, 0, len(roster))

	for _, entry := range roster {
		status, logged := statusByKey[rosterKey{studentID: entry.StudentID, classID: entry.ClassID}]
		if !logged || !status.Known() {
			status = StatusScheduled
		}

		classStatus := ClassStatus{
			ClassID:       entry.ClassID,
			ClassName:     entry.ClassName,
			TeacherName:   entry.TeacherName,
			ScheduledTime: entry.ScheduledTime,
			Status:        status,
		}

		idx, seen := indexByStudent[entry.StudentID]
		if !seen {
			name := entry.StudentName
			if name == "" {
				name = namesByStudent[entry.StudentID]
			}
			merged = append(merged, StudentDayStatus{
				StudentID:   entry.StudentID,
				StudentName: name,
				Classes:     []ClassStatus{},
			})
			idx = len(merged) - 1
			indexByStudent[entry.StudentID] = idx
		}
		merged[idx].Classes = append(merged[idx].Classes, classStatus)
	}

	for i := range merged {
		statuses := make([]Status, 0, len(merged[i].Classes))
		for _, class := range merged[i].Classes {
			statuses = append(statuses, class.Status)
		}
		merged[i].Status = Worst(statuses)
	}

	return merged, nil
}

// MissingStudentNames collects the ids of roster entries that arrived without
// a joined student name, deduplicated, so the caller can resolve them with a
// single batch lookup instead of one query per row.
func MissingStudentNames(roster []RosterEntry) []uint {
	seen := make(map[uint]struct{})
	missing := make([]uint, 0)
	for _, entry := range roster {
		if entry.StudentName != "" {
			continue
		}
		if _, dup := seen[entry.StudentID]; dup {
			continue
		}
		seen[entry.StudentID] = struct{}{}
		missing = append(missing, entry.StudentID)
	}
	return missing
}
