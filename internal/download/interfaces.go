package download

import (
	"context"
	"io"

	"github.com/ytget/art-gallery/internal/model"
)

// ImageSource opens image downloads. artic.Client implements it.
type ImageSource interface {
	OpenImage(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

// Exporter defines the interface for the image export service.
type Exporter interface {
	SetUpdateCallback(func(Task))
	AddTask(artwork model.Artwork, url string) (Task, error)
	GetTask(id string) (Task, bool)
	GetAllTasks() []Task
	StopTask(id string) error
	Wait(ctx context.Context) error
}
