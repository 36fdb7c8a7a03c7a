package download

import "time"

// TaskStatus represents the lifecycle of an export task
type TaskStatus string

const (
	TaskStatusPending     TaskStatus = "pending"
	TaskStatusDownloading TaskStatus = "downloading"
	TaskStatusStopping    TaskStatus = "stopping"
	TaskStatusCompleted   TaskStatus = "completed"
	TaskStatusStopped     TaskStatus = "stopped"
	TaskStatusError       TaskStatus = "error"
)

// IsActive reports whether the task is being worked on
func (s TaskStatus) IsActive() bool {
	return s == TaskStatusDownloading || s == TaskStatusStopping
}

// IsFinished reports whether the task reached a final state
func (s TaskStatus) IsFinished() bool {
	return s == TaskStatusCompleted || s == TaskStatusStopped || s == TaskStatusError
}

// Task is one artwork image being saved to disk
type Task struct {
	ID         string
	ArtworkID  int
	Title      string
	URL        string
	Status     TaskStatus
	Progress   float64 // 0..1, stays 0 when the size is unknown
	Percent    int
	Bytes      int64
	TotalBytes int64 // -1 when unknown
	OutputPath string
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}
