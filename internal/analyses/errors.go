package analyses

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrMissingResume         = errors.New("please provide resume content")
	ErrMissingJobDescription = errors.New("please provide a job description")
)

const (
	msgMissingResume         = "Please provide resume content"
	msgMissingJobDescription = "Please provide a job description"
)
