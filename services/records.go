package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"task-tracking-system/models"
	"task-tracking-system/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordService owns daily records and reconciles every task mutation into
// the user profile aggregate. Record and aggregate writes for one mutation
// happen inside a single transaction so the two can never drift apart on a
// partial failure.
type RecordService struct {
	DB    *gorm.DB
	Locks *UserLocks

	now func() time.Time
}

func NewRecordService(db *gorm.DB, locks *UserLocks) *RecordService {
	return &RecordService{DB: db, Locks: locks, now: time.Now}
}

func (s *RecordService) today() string {
	return utils.DateStringAt(s.now())
}

func (s *RecordService) tomorrow() string {
	return utils.DateStringAt(s.now().AddDate(0, 0, 1))
}

// AddTaskInput is the caller-facing payload for task creation.
type AddTaskInput struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// GetOrCreateRecord fetches the record for (user, date), creating a zeroed
// one on first access. Every date the user visits gets a slot, even if no
// task is ever added to it.
func (s *RecordService) GetOrCreateRecord(userID, date string) (*models.DailyRecord, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	return s.getOrCreate(s.DB, userID, date)
}

func (s *RecordService) getOrCreate(tx *gorm.DB, userID, date string) (*models.DailyRecord, error) {
	record, err := findRecord(tx, userID, date)
	if err == nil {
		// Refresh the seal once the date has been reached.
		if locked := date <= s.today(); locked != record.Locked {
			record.Locked = locked
			if err := tx.Omit("Tasks").Save(record).Error; err != nil {
				return nil, err
			}
		}
		return record, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	record = &models.DailyRecord{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   date,
		Tasks:  []models.Task{},
		Locked: date <= s.today(),
	}
	if err := tx.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// AddTask appends a pending task to the record for (user, date) and bumps
// the aggregate's created counter.
func (s *RecordService) AddTask(userID string, in AddTaskInput) (*models.DailyRecord, error) {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: date and title required", ErrInvalidInput)
	}

	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var record *models.DailyRecord
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, userID)
		if err != nil {
			return err
		}

		record, err = s.getOrCreate(tx, userID, in.Date)
		if err != nil {
			return err
		}

		task := models.Task{
			ID:            uuid.NewString(),
			DailyRecordID: record.ID,
			Title:         strings.TrimSpace(in.Title),
			Description:   strings.TrimSpace(in.Description),
			Difficulty:    NormalizeDifficulty(in.Difficulty),
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		record.Tasks = append(record.Tasks, task)
		record.Recompute()
		if err := tx.Omit("Tasks").Save(record).Error; err != nil {
			return err
		}

		user.TotalTasksCreated++
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateTask sets a task's completion state and reconciles the point and
// count deltas into the aggregate. Sending the state the task is already in
// is a no-op for the ledgers but still recomputes derived fields.
func (s *RecordService) UpdateTask(userID, date, taskID string, completed bool) (*models.DailyRecord, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(taskID) == "" {
		return nil, fmt.Errorf("%w: date and taskId required", ErrInvalidInput)
	}

	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var record *models.DailyRecord
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, userID)
		if err != nil {
			return err
		}
		record, err = findRecord(tx, userID, date)
		if err != nil {
			return err
		}
		task := record.FindTask(taskID)
		if task == nil {
			return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}

		wasCompleted := task.Completed
		pts := Points(task.Difficulty)

		switch {
		case completed && !wasCompleted:
			record.PointsEarned += pts
			user.TotalTasksCompleted++
			user.TotalPoints += pts
			if user.DailyCompletionSummary == nil {
				user.DailyCompletionSummary = models.DailySummary{}
			}
			user.DailyCompletionSummary[date]++
		case !completed && wasCompleted:
			record.PointsEarned = floorZero(record.PointsEarned - pts)
			user.TotalTasksCompleted = floorZero(user.TotalTasksCompleted - 1)
			user.TotalPoints = floorZero(user.TotalPoints - pts)
			if n := user.CompletedOn(date); n > 0 {
				user.DailyCompletionSummary[date] = n - 1
			}
		}

		task.Completed = completed
		if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).
			Update("completed", completed).Error; err != nil {
			return err
		}

		record.Recompute()
		if err := tx.Omit("Tasks").Save(record).Error; err != nil {
			return err
		}
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, err
	}

	_ = NewBadgeService(s.DB).AutoAwardBadges(userID) // fire-and-forget

	return record, nil
}

// DeleteTask removes a task and rolls its contribution out of both ledgers.
// Only tomorrow's record accepts deletions: today and every past date are
// sealed. The completion histogram is never decremented here; deleting a
// completed task must not erase streak-relevant history.
func (s *RecordService) DeleteTask(userID, date, taskID string) (*models.DailyRecord, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(taskID) == "" {
		return nil, fmt.Errorf("%w: date and taskId required", ErrInvalidInput)
	}
	if date != s.tomorrow() {
		return nil, fmt.Errorf("%w: tasks can only be deleted from tomorrow's record", ErrRecordLocked)
	}

	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var record *models.DailyRecord
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, userID)
		if err != nil {
			return err
		}
		record, err = findRecord(tx, userID, date)
		if err != nil {
			return err
		}
		task := record.FindTask(taskID)
		if task == nil {
			return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}

		wasCompleted := task.Completed
		pts := Points(task.Difficulty)

		if err := tx.Delete(&models.Task{}, "id = ?", task.ID).Error; err != nil {
			return err
		}
		record.RemoveTask(taskID)
		record.Recompute()
		if wasCompleted {
			record.PointsEarned = floorZero(record.PointsEarned - pts)
		}
		if err := tx.Omit("Tasks").Save(record).Error; err != nil {
			return err
		}

		user.TotalTasksCreated = floorZero(user.TotalTasksCreated - 1)
		if wasCompleted {
			user.TotalTasksCompleted = floorZero(user.TotalTasksCompleted - 1)
			user.TotalPoints = floorZero(user.TotalPoints - pts)
		}
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetTasks returns just the task list for a date. A date the user never
// visited yields an empty list, not an error.
func (s *RecordService) GetTasks(userID, date string) ([]models.Task, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	record, err := findRecord(s.DB, userID, date)
	if errors.Is(err, ErrNotFound) {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Tasks, nil
}

// GetAllRecords returns every daily record the user has, oldest first.
func (s *RecordService) GetAllRecords(userID string) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := s.DB.Preload("Tasks").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func findUser(tx *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	return &user, nil
}

func findRecord(tx *gorm.DB, userID, date string) (*models.DailyRecord, error) {
	var record models.DailyRecord
	err := tx.Preload("Tasks").
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: daily record for %s", ErrNotFound, date)
		}
		return nil, err
	}
	return &record, nil
}

// floorZero clamps decrements so replayed or duplicate requests can never
// drive a counter negative.
func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
