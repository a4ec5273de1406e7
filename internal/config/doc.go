// Package config loads forage-wait settings from a TOML file.
//
// # Location
//
// The file is looked up in order:
//
//   - the path given with --config
//   - $FORAGE_WAIT_CONFIG
//   - $XDG_CONFIG_HOME/forage-wait/config.toml (os.UserConfigDir)
//
// A missing file is not an error; defaults apply.
//
// # Format
//
//	runtime    = "docker"   # auto, docker or podman
//	timeout    = 30         # seconds, 0 waits indefinitely
//	quiet      = false
//	monochrome = false
//	stop_grace = "5s"       # SIGTERM to SIGKILL grace for the event process
//	current    = false      # check current health before watching
//
//	[log]
//	verbose = false
//	json    = false
//
// Command line flags take precedence over file values.
package config
