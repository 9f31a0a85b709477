package errorz

import "errors"

var (
	Forbidden        = errors.New("forbidden")
	SelfRequest      = errors.New("cannot request own post")
	DuplicateRequest = errors.New("request already exists for this post")
	PostUnavailable  = errors.New("post is not available")
	NotFound         = errors.New("not found")
)
