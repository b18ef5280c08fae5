package database

import "errors"

// ErrDuplicate marks a write rejected by a unique index. Handlers map it to
// 409.
var ErrDuplicate = errors.New("already exists")
