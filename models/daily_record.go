package models

import "time"

// Task is a single to-do item owned by its parent daily record. A task never
// exists outside its record; lookups by id go through DailyRecord.FindTask.
type Task struct {
	ID            string `gorm:"primaryKey;type:uuid" json:"id"`
	DailyRecordID string `gorm:"index;not null" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Difficulty  string `gorm:"type:varchar(8);default:'Medium'" json:"difficulty"`
	Completed   bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DailyRecord is the per-user, per-calendar-date container of tasks and
// derived totals. Date is a plain YYYY-MM-DD string in the user's local day,
// never a timestamp.
type DailyRecord struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"uniqueIndex:idx_user_date;not null" json:"user_id"`
	Date   string `gorm:"uniqueIndex:idx_user_date;not null" json:"date"`

	TotalTasks     int     `json:"total_tasks" gorm:"default:0"`
	CompletedTasks int     `json:"completed_tasks" gorm:"default:0"`
	PointsEarned   int     `json:"points_earned" gorm:"default:0"`
	CompletionRate float64 `json:"completion_rate" gorm:"default:0"`
	Locked         bool    `json:"locked" gorm:"default:false"`

	Tasks []Task `gorm:"foreignKey:DailyRecordID;constraint:OnDelete:CASCADE" json:"tasks"`

	Timestamps
}

// Recompute refreshes total_tasks, completed_tasks and completion_rate from
// the current task list. points_earned is deliberately not re-derived here:
// it is an incremental ledger maintained by the mutation path so that point
// adjustments survive recomputation.
func (r *DailyRecord) Recompute() {
	r.TotalTasks = len(r.Tasks)
	completed := 0
	for _, t := range r.Tasks {
		if t.Completed {
			completed++
		}
	}
	r.CompletedTasks = completed
	if r.TotalTasks > 0 {
		r.CompletionRate = float64(r.CompletedTasks) / float64(r.TotalTasks) * 100
	} else {
		r.CompletionRate = 0
	}
}

// FindTask returns a pointer into the record's task slice, or nil.
func (r *DailyRecord) FindTask(taskID string) *Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == taskID {
			return &r.Tasks[i]
		}
	}
	return nil
}

// RemoveTask drops the task with the given id from the slice. It reports
// whether anything was removed.
func (r *DailyRecord) RemoveTask(taskID string) bool {
	for i := range r.Tasks {
		if r.Tasks[i].ID == taskID {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
