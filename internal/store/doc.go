// Package store provides the SQLite-backed ordered key-value store.
//
// One table, entries, keyed by (namespace, key). Every write assigns the
// row a fresh value of seq, an INTEGER PRIMARY KEY AUTOINCREMENT column:
//
//   - seq is a logical clock shared by all namespaces; listing orders by
//     seq DESC, never by timestamps.
//   - AUTOINCREMENT persists the counter in sqlite_sequence, so seq keeps
//     growing across process restarts and values are never reused.
//   - Overwriting a key replaces the whole row (INSERT OR REPLACE), which
//     assigns a new seq and moves the entry to the front of recency order.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous: from config (NORMAL by default)
//   - busy_timeout: from config (5000 ms by default); a writer that cannot
//     obtain the lock within the timeout fails, it is never retried here
package store
