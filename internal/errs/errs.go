package errs

import "errors"

// Domain errors returned by the service layer. Handlers translate these
// to HTTP statuses; nothing here is fatal to the process.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrPermission       = errors.New("you are not the owner of this resource")
	ErrSelfReference    = errors.New("action cannot target yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post not liked")
	ErrValidation       = errors.New("invalid input")
)
