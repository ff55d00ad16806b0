// Package key parses and formats namespaced external keys.
//
// An external key has the form "local[@namespace]". The split point is the
// LAST "@" in the key, so "a@b@prod" addresses local key "a@b" in namespace
// "prod". A key with no "@" lives in the default (empty) namespace. There
// is no escaping mechanism: a local key in the default namespace cannot
// contain "@". This is a documented constraint of the key space, not a
// parsing bug.
package key
