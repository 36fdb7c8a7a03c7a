package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/download"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// Services are the dependencies the UI is built on
type Services struct {
	Catalog  artic.Catalog
	Library  *gallery.Library
	Settings *config.Settings
	Exporter download.Exporter // nil disables saving images
	Log      zerolog.Logger
}

// tabScreen is the content of one bottom tab
type tabScreen interface {
	Content() fyne.CanvasObject
	OnFocus()
}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App
	svc    Services
	log    zerolog.Logger

	mobile *MobileUI
	images *ImageLoader
	nav    *Navigator
	tabs   *container.AppTabs
	width  int

	explore   *ExploreScreen
	search    *SearchScreen
	favourite *FavouriteScreen
	settings  *SettingsScreen
	screens   []tabScreen
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc Services) *RootUI {
	ui := &RootUI{
		window: window,
		app:    app,
		svc:    svc,
		log:    svc.Log.With().Str("component", "ui").Logger(),
		mobile: NewMobileUI(app),
	}
	ui.images = NewImageLoader(svc.Catalog, svc.Log)
	ui.width = ui.mobile.CardWidth(window.Canvas().Size().Width, svc.Settings.GetCardWidth())
	if svc.Exporter != nil {
		svc.Exporter.SetUpdateCallback(ui.onExportUpdate)
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.explore = NewExploreScreen(ui)
	ui.search = NewSearchScreen(ui)
	ui.favourite = NewFavouriteScreen(ui)
	ui.settings = NewSettingsScreen(ui)
	ui.screens = []tabScreen{ui.explore, ui.search, ui.favourite, ui.settings}

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(TabExplore, ui.explore.Content()),
		container.NewTabItem(TabSearch, ui.search.Content()),
		container.NewTabItem(TabFavourite, ui.favourite.Content()),
		container.NewTabItem(IconSettings+" "+TabSettings, ui.settings.Content()),
	)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.OnSelected = func(*container.TabItem) { ui.focusCurrentTab() }

	ui.nav = NewNavigator(ui.tabs)
	ui.nav.OnBaseFocus = ui.focusCurrentTab
	ui.nav.OnChange = func(top Page) {
		if top == nil {
			ui.window.SetTitle(AppTitle)
			return
		}
		ui.window.SetTitle(AppTitle + MiddleDotSeparator + top.Title())
	}

	ui.window.SetContent(ui.nav.View())
	ui.focusCurrentTab()

	ui.log.Info().Int("card_width", ui.width).Bool("mobile", ui.mobile.IsMobileDevice()).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	if ui.mobile.IsMobileDevice() {
		return
	}

	refreshItem := fyne.NewMenuItem(IconRefresh+" Refresh", func() {
		ui.showExplore()
		ui.explore.Refresh()
	})
	settingsItem := fyne.NewMenuItem(TabSettings, func() {
		ui.nav.Reset()
		ui.tabs.SelectIndex(len(ui.screens) - 1)
	})

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Gallery", refreshItem, settingsItem),
	))
}

// focusCurrentTab notifies the selected tab that it is visible again
func (ui *RootUI) focusCurrentTab() {
	if i := ui.tabs.SelectedIndex(); i >= 0 && i < len(ui.screens) {
		ui.screens[i].OnFocus()
	}
}

// cardWidth is the pixel width images are requested at
func (ui *RootUI) cardWidth() int {
	return ui.width
}

// showExplore closes every page and selects the explore tab
func (ui *RootUI) showExplore() {
	ui.nav.Reset()
	if ui.tabs.SelectedIndex() == 0 {
		ui.focusCurrentTab()
		return
	}
	ui.tabs.SelectIndex(0)
}

// openDetail pushes the detail page of an artwork
func (ui *RootUI) openDetail(id int, preset *model.Card) {
	ui.log.Debug().Int("id", id).Msg("open detail")
	ui.nav.Push(NewDetailPage(ui, id, preset))
}

// openArtist pushes the artist page
func (ui *RootUI) openArtist(id int) {
	ui.log.Debug().Int("artist_id", id).Msg("open artist")
	ui.nav.Push(NewArtistPage(ui, id))
}

// openSearch pushes a results page for q
func (ui *RootUI) openSearch(q artic.Query) {
	ui.log.Debug().Str("filter", q.Filter).Str("text", q.Text).Msg("open search")
	ui.nav.Push(NewResultsPage(ui, q))
}

// followLink navigates to a detail link target
func (ui *RootUI) followLink(link gallery.Link) {
	switch link.Kind {
	case gallery.LinkArtist:
		ui.openArtist(link.ArtistID)
	case gallery.LinkSearch:
		ui.openSearch(link.Query)
	}
}

// linkValue renders a detail value, as a button when it links somewhere
func (ui *RootUI) linkValue(value string, link gallery.Link) fyne.CanvasObject {
	if link.Kind == gallery.LinkNone {
		label := widget.NewLabel(value)
		label.Wrapping = fyne.TextWrapWord
		return label
	}
	btn := widget.NewButton(value, func() { ui.followLink(link) })
	btn.Alignment = widget.ButtonAlignLeading
	btn.Importance = widget.LowImportance
	return btn
}

// share copies the large image URL and the title to the clipboard
func (ui *RootUI) share(a model.Artwork) {
	if !a.HasImage() {
		return
	}
	text := fmt.Sprintf("%s\n%s", a.DisplayTitle(), ui.svc.Catalog.ShareURL(a.ImageID))
	ui.app.Clipboard().SetContent(text)
	ui.log.Info().Int("id", a.ID).Msg("artwork link copied")
	ui.showNotification(IconShare + " Link copied to clipboard")
}

// canSave reports whether images can be saved to disk
func (ui *RootUI) canSave() bool {
	return ui.svc.Exporter != nil
}

// save queues the large image of an artwork for export
func (ui *RootUI) save(a model.Artwork) {
	if !ui.canSave() || !a.HasImage() {
		return
	}
	if _, err := ui.svc.Exporter.AddTask(a, ui.svc.Catalog.ShareURL(a.ImageID)); err != nil {
		ui.showNotification(IconError + " " + err.Error())
		return
	}
	ui.showNotification(IconSave + " Saving " + model.ShortenText(a.DisplayTitle(), RowTitleLength))
}

// onExportUpdate reports finished exports; called from export goroutines
func (ui *RootUI) onExportUpdate(task download.Task) {
	switch task.Status {
	case download.TaskStatusCompleted:
		ui.showNotification(IconSave + " Saved to " + task.OutputPath)
	case download.TaskStatusError:
		ui.showNotification(IconError + " Save failed: " + task.LastError)
	}
}

// showNotification shows a short toast in the top-right corner. Safe to call
// from any goroutine.
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		label := widget.NewLabel(message)
		label.Wrapping = fyne.TextWrapWord

		var toast *widget.PopUp
		closeBtn := widget.NewButton(IconClose, func() {
			if toast != nil {
				toast.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		toast = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, label), ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toast.Resize(toastSize)
		toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
		toast.Show()

		time.AfterFunc(ToastAutoHide, func() {
			fyne.Do(toast.Hide)
		})
	})
}
