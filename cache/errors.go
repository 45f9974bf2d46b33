package cache

import "errors"

// ErrCacheStoreRequired is returned when a cache store is not provided.
var ErrCacheStoreRequired = errors.New("cache store required")
