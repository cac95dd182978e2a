package task

import "time"

// SummaryDays is the width of the "created recently" window.
const SummaryDays = 7

// DayCount is the number of tasks created on one calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates the board for the dashboard.
type Summary struct {
	Total        int            `json:"total"`
	Open         int            `json:"open"`
	Issues       int            `json:"issues"`
	ByStatus     map[Status]int `json:"by_status"`
	ByType       map[Type]int   `json:"by_type"`
	CreatedLast7 []DayCount     `json:"created_last_7_days"`
}

// Summarize counts tasks as of now. Days are calendar days in now's
// location, oldest first, ending today.
func Summarize(tasks []Task, now time.Time) Summary {
	s := Summary{
		ByStatus:     make(map[Status]int, len(Statuses())),
		ByType:       make(map[Type]int, len(Types())),
		CreatedLast7: make([]DayCount, SummaryDays),
	}
	for _, st := range Statuses() {
		s.ByStatus[st] = 0
	}
	for _, t := range Types() {
		s.ByType[t] = 0
	}

	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	first := today.AddDate(0, 0, -(SummaryDays - 1))
	index := make(map[string]int, SummaryDays)
	for i := range s.CreatedLast7 {
		day := first.AddDate(0, 0, i)
		s.CreatedLast7[i] = DayCount{Date: day.Format(DateLayout), Label: day.Format("1/2")}
		index[s.CreatedLast7[i].Date] = i
	}

	for _, t := range tasks {
		s.Total++
		s.ByStatus[t.Status]++
		s.ByType[t.Type]++
		if t.Status.Open() {
			s.Open++
		}
		if t.Status == StatusIssue {
			s.Issues++
		}
		if i, ok := index[t.CreatedAt.In(loc).Format(DateLayout)]; ok {
			s.CreatedLast7[i].Count++
		}
	}
	return s
}
