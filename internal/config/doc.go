// Package config loads the cakes configuration and user preferences.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cakes/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	endpoint = "https://example.com/cake.json"
//	timeout_seconds = 10
//	thumbnail_size = 256
//	log_file = "~/.local/state/cakes/cakes.log"
//
// Every field is optional. Tilde expansion is applied to log_file.
//
// # Preferences
//
// LoadPrefs and SavePrefs persist UI preferences (currently the theme) in
// ~/.config/cakes/prefs.toml. Unlike Load, LoadPrefs never fails: a missing
// or unreadable file yields the defaults.
package config
