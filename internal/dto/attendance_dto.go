package dto

// ClassStatusView is one class slot of a student's day in the today view.
type ClassStatusView struct {
	ClassID       uint   `json:"class_id"`
	ClassName     string `json:"class_name"`
	TeacherName   string `json:"teacher_name"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
}

// StudentTodayView is the merged roster/status view for one student: the full
// per-class breakdown and the single aggregate status.
type StudentTodayView struct {
	StudentID   uint              `json:"student_id"`
	StudentName string            `json:"student_name"`
	Classes     []ClassStatusView `json:"classes"`
	Status      string            `json:"status"`
}
