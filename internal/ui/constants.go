package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings     = "⚙"
	IconBack         = "←"
	IconRefresh      = "⟳"
	IconSearch       = "🔍"
	IconHeart        = "♥"
	IconHeartEmpty   = "♡"
	IconBookmark     = "★"
	IconBookmarkOpen = "☆"
	IconShare        = "📤"
	IconSave         = "💾"
	IconDelete       = "🗑️"
	IconArtist       = "👤"
	IconError        = "❌"
	IconClose        = "×"
)

// Text fragments
const (
	AppTitle           = "Art Gallery"
	HashtagPrefix      = "#"
	MiddleDotSeparator = " · "
	ResultsCountFormat = "%d results"
)

// Tab titles
const (
	TabExplore   = "Explore"
	TabSearch    = "Search"
	TabFavourite = "Favourite"
	TabSettings  = "Settings"
)

// Text lengths used when shortening card text
const (
	CardTitleLength        = 35
	CardDescriptionLength  = 50
	RowTitleLength         = 20
	RowDescriptionLength   = 25
	HashtagLength          = 2
	ArtistDescriptionLimit = 0
)

// Layout sizing
const (
	CardMinWidth    float32 = 280
	CardImageRadius float32 = 10
	ThumbSize       float32 = 120
	RowThumbSize    float32 = 72
	GridColumns             = 3

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Infinite scroll: load the next page when the remaining content is shorter
// than this many viewports.
const LoadMoreViewports = 4

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Timeouts for background work started by screens
const (
	PageLoadTimeout  = 30 * time.Second
	ImageLoadTimeout = 20 * time.Second
	StoreOpTimeout   = 5 * time.Second
)
