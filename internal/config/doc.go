// Package config resolves the store location and SQLite durability tunables.
//
// Resolution happens once per invocation and the result is immutable:
//
//  1. .env / .env.local files are loaded into the environment (existing
//     variables win).
//  2. The DB_LOCATION environment variable, when set, overrides the store
//     location from the config file.
//  3. ~/.config/blade/config.toml supplies everything else; it is created
//     with defaults on first run.
//
// The location signal names a directory. The database file inside it is
// always named blade.db, so the resolved db_location reported by Dump ends
// in that fixed filename regardless of where the signal came from.
package config
