package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/art-gallery/internal/model"
)

// Export tuning
const (
	DefaultMaxParallel = 2
	progressInterval   = 200 * time.Millisecond
	maxSlugLength      = 40
	fileExtension      = ".jpg"
	dirPermissions     = 0o755
)

// Service saves artwork images to a directory with a bounded number of
// parallel downloads
type Service struct {
	tasks       map[string]*Task
	order       []string
	cancels     map[string]context.CancelFunc
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	downloadDir string
	source      ImageSource
	log         zerolog.Logger
	onUpdate    func(Task) // callback for UI updates
	wg          sync.WaitGroup
}

// NewService creates a new export service
func NewService(downloadDir string, maxParallel int, source ImageSource, log zerolog.Logger) *Service {
	if maxParallel < 1 {
		maxParallel = DefaultMaxParallel
	}
	return &Service{
		tasks:       make(map[string]*Task),
		cancels:     make(map[string]context.CancelFunc),
		maxParallel: maxParallel,
		downloadDir: downloadDir,
		source:      source,
		log:         log.With().Str("component", "download").Logger(),
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot of every task update
func (s *Service) SetUpdateCallback(callback func(Task)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// AddTask queues the image at url for artwork
func (s *Service) AddTask(artwork model.Artwork, url string) (Task, error) {
	if url == "" {
		return Task{}, fmt.Errorf("artwork %d has no image", artwork.ID)
	}

	s.tasksMutex.Lock()
	// Check for duplicate artworks
	for _, task := range s.tasks {
		if task.ArtworkID == artwork.ID && !task.Status.IsFinished() {
			s.tasksMutex.Unlock()
			return Task{}, fmt.Errorf("artwork %d is already being saved", artwork.ID)
		}
	}

	task := &Task{
		ID:         generateTaskID(),
		ArtworkID:  artwork.ID,
		Title:      artwork.DisplayTitle(),
		URL:        url,
		Status:     TaskStatusPending,
		TotalBytes: -1,
		OutputPath: filepath.Join(s.downloadDir, FileName(artwork)),
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.wg.Add(1)

	// Try to start task if we have capacity
	var ctx context.Context
	if s.activeCount < s.maxParallel {
		ctx = s.claimLocked(task)
	}
	snapshot := *task
	s.tasksMutex.Unlock()

	s.log.Debug().Str("task", task.ID).Int("artwork", artwork.ID).Msg("export queued")
	if ctx != nil {
		go s.run(ctx, task)
	}
	return snapshot, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return Task{}, false
	}
	return *task, true
}

// GetAllTasks returns all tasks in the order they were added
func (s *Service) GetAllTasks() []Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.tasks[id])
	}
	return tasks
}

// StopTask stops a pending or running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}

	switch {
	case task.Status == TaskStatusPending:
		task.Status = TaskStatusStopped
		task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()
		s.wg.Done()
	case task.Status.IsActive():
		task.Status = TaskStatusStopping
		cancel := s.cancels[id]
		s.tasksMutex.Unlock()
		if cancel != nil {
			cancel()
		}
	default:
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	s.notifyUpdate(task)
	return nil
}

// Wait blocks until every queued task finished or ctx is done
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// claimLocked marks task as running and returns the context StopTask
// cancels. Caller holds tasksMutex.
func (s *Service) claimLocked(task *Task) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancels[task.ID] = cancel
	s.activeCount++
	task.Status = TaskStatusDownloading
	return ctx
}

// run downloads a claimed task
func (s *Service) run(ctx context.Context, task *Task) {
	s.notifyUpdate(task)

	err := s.download(ctx, task)

	// Update final status
	s.tasksMutex.Lock()
	if cancel := s.cancels[task.ID]; cancel != nil {
		cancel()
	}
	delete(s.cancels, task.ID)
	switch {
	case err == nil:
		task.Status = TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	case errors.Is(err, context.Canceled):
		task.Status = TaskStatusStopped
	default:
		task.Status = TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	s.activeCount--
	s.tasksMutex.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn().Err(err).Str("task", task.ID).Int("artwork", task.ArtworkID).Msg("export failed")
	} else if err == nil {
		s.log.Info().Str("path", task.OutputPath).Int("artwork", task.ArtworkID).Msg("image saved")
	}

	s.notifyUpdate(task)
	s.wg.Done()

	// Try to start next pending task
	s.startNextPendingTask()
}

// download streams the image into a temporary file and renames it into place
func (s *Service) download(ctx context.Context, task *Task) error {
	if err := os.MkdirAll(s.downloadDir, dirPermissions); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	body, size, err := s.source.OpenImage(ctx, task.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	s.tasksMutex.Lock()
	task.TotalBytes = size
	s.tasksMutex.Unlock()

	tmp, err := os.CreateTemp(s.downloadDir, "."+filepath.Base(task.OutputPath)+".*.part")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	pw := &progressWriter{service: s, task: task}
	if _, err := io.Copy(tmp, io.TeeReader(body, pw)); err != nil {
		tmp.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	if err := os.Rename(tmp.Name(), task.OutputPath); err != nil {
		return fmt.Errorf("move image into place: %w", err)
	}
	return nil
}

// progressWriter counts downloaded bytes and reports progress at most every
// progressInterval
type progressWriter struct {
	service  *Service
	task     *Task
	lastSent time.Time
}

func (w *progressWriter) Write(p []byte) (int, error) {
	s := w.service
	s.tasksMutex.Lock()
	w.task.Bytes += int64(len(p))
	if w.task.TotalBytes > 0 {
		w.task.Progress = float64(w.task.Bytes) / float64(w.task.TotalBytes)
		w.task.Percent = int(w.task.Progress * 100)
	}
	s.tasksMutex.Unlock()

	if time.Since(w.lastSent) >= progressInterval {
		w.lastSent = time.Now()
		s.notifyUpdate(w.task)
	}
	return len(p), nil
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	if s.activeCount >= s.maxParallel {
		s.tasksMutex.Unlock()
		return
	}

	// Find next pending task
	for _, id := range s.order {
		task := s.tasks[id]
		if task.Status == TaskStatusPending {
			ctx := s.claimLocked(task)
			s.tasksMutex.Unlock()
			go s.run(ctx, task)
			return
		}
	}
	s.tasksMutex.Unlock()
}

// notifyUpdate calls the update callback with a snapshot of task
func (s *Service) notifyUpdate(task *Task) {
	s.tasksMutex.RLock()
	cb := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if cb != nil {
		cb(snapshot)
	}
}

// FileName returns "<id>-<title-slug>.jpg" for an artwork
func FileName(a model.Artwork) string {
	var b strings.Builder
	dash := false
	n := 0
	for _, r := range strings.ToLower(a.DisplayTitle()) {
		if n >= maxSlugLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			n++
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
			n++
		}
	}
	slug := strings.TrimRight(b.String(), "-")

	name := strconv.Itoa(a.ID)
	if slug != "" {
		name += "-" + slug
	}
	return name + fileExtension
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
