// Package settings implements the configuration manager: a file-backed main
// configuration, a remote site configuration that is never persisted, and
// typed accessors over both backed by a memoization cache.
//
// A Manager is constructed explicitly and loaded once by the process entry
// point:
//
//	m, err := settings.New(cfg.Settings, remote, console.New(os.Stdout), log)
//	if err != nil { ... }
//	if err := m.Load(ctx); errors.Is(err, settings.ErrFatal) { ... }
//	debug, err := m.GetBool("DEFAULT", "debug")
//
// Load and Write absorb their own failures (logged and reported on the
// console), except a failed download of the default configuration, which is
// returned as a *FatalError. Key lookups return ErrKeyNotFound to the caller.
package settings
