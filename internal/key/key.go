package key

import "strings"

// DefaultNamespace is the namespace of an unqualified key.
const DefaultNamespace = ""

// Separator delimits the local key from the namespace suffix.
const Separator = "@"

// Key is a parsed external key.
type Key struct {
	Namespace string
	Local     string
}

// Parse splits an external key at its last Separator.
// "user@prod" -> {prod, user}; "user" -> {"", user}; "a@b@prod" -> {prod, a@b}.
func Parse(external string) Key {
	i := strings.LastIndex(external, Separator)
	if i < 0 {
		return Key{Namespace: DefaultNamespace, Local: external}
	}
	return Key{Namespace: external[i+len(Separator):], Local: external[:i]}
}

// External reconstructs the external form of the key.
func (k Key) External() string {
	if k.Namespace == DefaultNamespace {
		return k.Local
	}
	return k.Local + Separator + k.Namespace
}

// Display returns the key as shown by a namespace-scoped listing: the exact
// "@namespace" suffix is removed, never a trailing character set. Callers
// already know the scoping namespace, so only the local key is shown.
func Display(external, namespace string) string {
	if namespace == DefaultNamespace {
		return external
	}
	return strings.TrimSuffix(external, Separator+namespace)
}
