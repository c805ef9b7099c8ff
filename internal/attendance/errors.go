package attendance

import "errors"

// ErrMissingJoinKey signals a fact row that cannot be associated with its
// parent at all: an attendance record without a student id, class id, or date.
// Records that merely lack a class id but still carry a class name are not an
// error; they resolve through the name fallback or the Unassigned bucket.
var ErrMissingJoinKey = errors.New("record is missing a required join key")
