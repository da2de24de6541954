// Package app wires configuration, the schedule source, state and the UI
// together. It is the composition root of wodview.
//
// Startup order:
//
//  1. Load local settings (config.toml) and apply flag overrides
//  2. Build the schedule source (HTTP client or directory) and week lister
//  3. Merge the remote config.json over the defaults
//  4. List the available weeks
//  5. Start the week monitor and run the TUI (or print one frame)
//
// The monitor polls config.json every few minutes while notifications are
// enabled and announces newly published weeks.
package app
