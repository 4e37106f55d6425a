package config

// Application settings.
const (
	AppName    = "cadence"
	DBFileName = "cadence.db"
)

// Default goal durations offered by the creation form, in seconds.
const (
	DurationShort  = 15 * 60
	DurationMedium = 30 * 60
	DurationLong   = 60 * 60
)

// Settings keys.
const (
	SettingTheme          = "theme"
	SettingExportPassHash = "export_passphrase_hash"
)
