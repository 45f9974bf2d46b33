package quota

import "errors"

// ErrUserRepositoryRequired is returned when a user repository is not provided.
var ErrUserRepositoryRequired = errors.New("user repository required")
