package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/config"
)

// SettingsScreen edits the persisted preferences and clears local data
type SettingsScreen struct {
	root     *RootUI
	settings *config.Settings

	// UI components
	cardWidthEntry *widget.Entry
	pageSizeEntry  *widget.Entry
	gridSizeEntry  *widget.Entry
	apiURLEntry    *widget.Entry
	logLevelSelect *widget.Select
	storageSelect  *widget.Select

	view fyne.CanvasObject
}

// NewSettingsScreen creates the settings tab
func NewSettingsScreen(root *RootUI) *SettingsScreen {
	s := &SettingsScreen{
		root:     root,
		settings: root.svc.Settings,
	}
	s.createUI()
	return s
}

// Content returns the tab content
func (s *SettingsScreen) Content() fyne.CanvasObject {
	return s.view
}

// OnFocus loads current settings into the form
func (s *SettingsScreen) OnFocus() {
	s.loadCurrentSettings()
}

// createUI creates the settings UI
func (s *SettingsScreen) createUI() {
	s.cardWidthEntry = widget.NewEntry()
	s.cardWidthEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinCardWidth, config.MaxCardWidth))

	s.pageSizeEntry = widget.NewEntry()
	s.pageSizeEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinPageSize, config.MaxPageSize))

	s.gridSizeEntry = widget.NewEntry()
	s.gridSizeEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinPageSize, config.MaxPageSize))

	s.apiURLEntry = widget.NewEntry()
	s.apiURLEntry.SetPlaceHolder(config.DefaultBaseURL)

	s.logLevelSelect = widget.NewSelect(s.settings.GetLogLevelOptions(), nil)
	s.storageSelect = widget.NewSelect(s.settings.GetStorageDriverOptions(), nil)

	saveBtn := s.root.mobile.CreateMobileButton("Save", s.onSave)
	saveBtn.Importance = widget.HighImportance

	clearBtn := s.root.mobile.CreateMobileButton(IconDelete+" Remove temporary data", s.onClear)
	clearBtn.Importance = widget.DangerImportance

	form := container.NewVBox(
		widget.NewLabel("Feed Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Image Width (px):"),
		s.cardWidthEntry,

		widget.NewLabel("Cards per Page:"),
		s.pageSizeEntry,

		widget.NewLabel("Thumbnails per Page:"),
		s.gridSizeEntry,

		widget.NewSeparator(),
		widget.NewLabel("Advanced"),
		widget.NewSeparator(),

		widget.NewLabel("API URL:"),
		s.apiURLEntry,

		widget.NewLabel("Log Level:"),
		s.logLevelSelect,

		widget.NewLabel("Library Storage (sqlite is shared with gallery-cli):"),
		s.storageSelect,

		saveBtn,
		widget.NewSeparator(),
		clearBtn,
	)

	s.view = container.NewVScroll(container.NewPadded(form))
	s.loadCurrentSettings()
}

// loadCurrentSettings loads current settings into the UI
func (s *SettingsScreen) loadCurrentSettings() {
	s.cardWidthEntry.SetText(strconv.Itoa(s.settings.GetCardWidth()))
	s.pageSizeEntry.SetText(strconv.Itoa(s.settings.GetPageSize()))
	s.gridSizeEntry.SetText(strconv.Itoa(s.settings.GetGridPageSize()))
	s.apiURLEntry.SetText(s.settings.GetAPIBaseURL())
	s.logLevelSelect.SetSelected(s.settings.GetLogLevel())
	s.storageSelect.SetSelected(s.settings.GetStorageDriver())
}

// onSave handles saving the settings
func (s *SettingsScreen) onSave() {
	if v, err := strconv.Atoi(s.cardWidthEntry.Text); err == nil {
		s.settings.SetCardWidth(v)
	}
	if v, err := strconv.Atoi(s.pageSizeEntry.Text); err == nil {
		s.settings.SetPageSize(v)
	}
	if v, err := strconv.Atoi(s.gridSizeEntry.Text); err == nil {
		s.settings.SetGridPageSize(v)
	}
	if s.apiURLEntry.Text != "" {
		s.settings.SetAPIBaseURL(s.apiURLEntry.Text)
	}
	if s.logLevelSelect.Selected != "" {
		s.settings.SetLogLevel(s.logLevelSelect.Selected)
	}
	if s.storageSelect.Selected != "" {
		s.settings.SetStorageDriver(s.storageSelect.Selected)
	}

	// Setters clamp out-of-range values; show what was stored
	s.loadCurrentSettings()
	s.root.log.Info().
		Int("card_width", s.settings.GetCardWidth()).
		Int("page_size", s.settings.GetPageSize()).
		Str("log_level", s.settings.GetLogLevel()).
		Str("storage", s.settings.GetStorageDriver()).
		Msg("settings saved")

	dialog.ShowInformation("Settings", "Settings saved. New feeds use them; API, log and storage changes apply after restart.", s.root.window)
}

// onClear asks for confirmation and drops liked, favourited and queued reloads
func (s *SettingsScreen) onClear() {
	dialog.ShowConfirm("Remove temporary data",
		"Liked and favourite artworks will be forgotten. Continue?",
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
				defer cancel()
				if err := s.root.svc.Library.Clear(ctx); err != nil {
					s.root.log.Error().Err(err).Msg("failed to clear library")
					s.root.showNotification(fmt.Sprintf("%s %v", IconError, err))
					return
				}
				s.root.log.Info().Msg("library cleared")
				fyne.Do(s.root.showExplore)
			}()
		}, s.root.window)
}
