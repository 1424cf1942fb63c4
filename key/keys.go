// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog - these keys govern the video catalog shown on the landing view.
const (
	CatalogSearchLimit = "catalog.search_limit"
	CatalogShowURLs    = "catalog.show_urls"
)

// Media Playback - these keys maintain the state and configuration for the playback session and its widget.
const (
	Player              = "player.default"
	PlayerIdleHideMs    = "player.idle_hide_ms"
	PlayerSamplerMs     = "player.sampler_ms"
	PlayerRewindSeconds = "player.rewind_seconds"
	PlayerUnmuteVolume  = "player.unmute_volume"
	PlayerAutoplay      = "player.autoplay"
)

// Inspection Guard - these keys configure the anti-inspection detector adapter.
const (
	GuardEnable              = "guard.enable"
	GuardPollMs              = "guard.poll_ms"
	GuardSuppressContextMenu = "guard.suppress_context_menu"
)

// History Tracking - these keys configure the persistence of playback progress.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing = "tui.item_spacing"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
