// Package cli provides the interactive xpboard command-line client.
//
// It wires configuration, the local session store, the platform HTTP
// clients and the profile services behind a small REPL. Typical flow:
// restore a stored session if it is still valid, otherwise prompt for
// credentials, then print the profile and let the user drill into
// sections.
//
// Key features:
//   - Login / Logout / WhoAmI
//   - Profile overview, cumulative XP, audit ratio, grades per project
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
