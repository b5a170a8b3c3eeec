package cache

import "errors"

// ErrNoSpace reports that an operation would exceed capacity and eviction
// could not make room. The map is unchanged when it is returned.
var ErrNoSpace = errors.New("cache: no space")

// ErrKeyNotFound reports a lookup of an absent key by At or QuietAt.
var ErrKeyNotFound = errors.New("cache: key not found")
