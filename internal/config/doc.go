// Package config loads, normalizes, and validates kd configuration.
//
// Configuration lives in a per-user directory derived from the reverse-domain
// identifier com.webspence.kd. An optional config.toml in that directory tunes
// the data directory, logging, currency rate, and prompt behaviour, and an
// optional .env file beside it is loaded into the environment first so that
// KD_* variables can be kept next to the config. Missing files are not errors:
// defaults apply and EnsureDirectories creates the directories on first run.
//
// Always obtain settings through this package so commands receive expanded
// absolute paths and validated values.
package config
