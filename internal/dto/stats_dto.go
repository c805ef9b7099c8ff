package dto

// DailyStatusView is one calendar date of the weekly attendance breakdown.
type DailyStatusView struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	Excused int    `json:"excused"`
}

// StudentRateView is one student's rolling attendance rate.
type StudentRateView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	Excused int    `json:"excused"`
	Rate    int    `json:"rate"`
}
