package rooms

import "errors"

// ErrCacheMiss ключ отсутствует в кэше
var ErrCacheMiss = errors.New("rooms.cache: cache miss")
