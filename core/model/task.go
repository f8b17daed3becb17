package model

// Task represents one unit of backlog work entered on the planning form.
type Task struct {
	// Name identifies the task. It is not required to be unique.
	Name string `json:"name"`
	// Hours is the estimated effort. Zero-hour tasks keep their place in
	// the scheduling order but add no load.
	Hours float64 `json:"hours"`
	// DueDate is the optional deadline. A nil value means "no deadline"
	// and sorts after every dated task.
	DueDate *Date `json:"due_date,omitempty"`
}
