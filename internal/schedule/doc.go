// Package schedule defines the weekly schedule documents and the sources that
// load them.
//
// # Resources
//
// A schedule site is a directory of static files:
//
//	config.json                    configuration resource
//	semanas/semana_<w>_<y>.json    one document per week key
//
// Both are read through a Source. Client reads them over HTTP and never
// writes; FSSource reads (and can write config.json) on a billy filesystem,
// which is either a host directory (osfs) or an in-memory tree (memfs).
//
// # Errors
//
// Sources return *FetchError for transport failures, non-2xx statuses and
// missing files, and *ParseError for payloads that are not valid JSON. Callers
// inspect them with errors.As.
//
// # Week listing
//
// The static site has no directory listing, so available weeks come from a
// Lister: StaticLister (built-in seed or a YAML seed file), DirLister (scans
// the semanas directory of a filesystem source) or ConfigLister (reads the
// semanasDisponibles field of config.json).
package schedule
