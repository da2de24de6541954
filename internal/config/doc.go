// Package config loads the local wodview settings from
// ~/.config/wodview/config.toml.
//
// A missing file is not an error: every field has a default so wodview
// runs against the current directory out of the box.
//
// Example:
//
//	source = "https://box.example.com/programacion/"
//	weeks = "config"            # static | dir | config
//	seed_file = "~/weeks.yaml"  # used by the static strategy
//	poll_minutes = 5
//	log_file = "~/.local/share/wodview/wodview.log"
//	request_timeout_seconds = 10
//
// Paths accept "~" and are made absolute. A source starting with http:// or
// https:// is fetched over HTTP; anything else is a directory holding
// config.json and semanas/.
package config
