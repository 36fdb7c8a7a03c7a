package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/art-gallery/internal/model"
)

func TestFavouritesStatus(t *testing.T) {
	tests := []struct {
		name     string
		state    model.LoadState
		count    int
		err      error
		expected string
		shown    bool
	}{
		{"loading", model.LoadStateLoading, 0, nil, "Loading...", true},
		{"loaded empty", model.LoadStateExhausted, 0, nil, "No favourites yet", true},
		{"loaded with rows", model.LoadStateExhausted, 3, nil, "", false},
		{"idle", model.LoadStateIdle, 0, nil, "", false},
		{"error", model.LoadStateError, 0, errors.New("offline"), IconError + " offline", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, shown := favouritesStatus(tt.state, tt.count, tt.err)
			if shown != tt.shown {
				t.Errorf("Expected shown=%v, got %v", tt.shown, shown)
			}
			if text != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, text)
			}
		})
	}
}

func TestFavouritesStatus_ErrorMentionsCause(t *testing.T) {
	text, _ := favouritesStatus(model.LoadStateError, 2, errors.New("timeout"))
	if !strings.Contains(text, "timeout") {
		t.Errorf("Expected error text to contain cause, got %q", text)
	}
}
