// Package engine composes the key codec, the store and the resolved
// configuration into the logical operations behind the CLI: get, set,
// delete, list, list-namespaces and dump-config.
//
// Each operation corresponds to one short-lived process invocation. The
// engine opens the backend at the start of the operation and closes it on
// every exit path before returning, so a failed write never leaves the
// database locked for the next invocation. Nothing is retried internally;
// the backend's own busy timeout is the only waiting that happens.
package engine
