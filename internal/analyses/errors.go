package analyses

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("analysis belongs to another user")
)
