// Package config loads the terminal profile: colors, cursor, and
// rendering options.
//
// Profiles are TOML files. A missing file yields the built-in default
// profile; a present file overrides only the fields it sets. The
// Watcher reloads the profile when the file changes on disk.
package config
