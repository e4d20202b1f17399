package ranking

import "errors"

var (
	ErrNotFound    = errors.New("candidate not found")
	ErrNoSelection = errors.New("no candidates selected")
	ErrNoFiles     = errors.New("no files uploaded")
)

// ErrorCodeNoSelection rejects outreach with an empty selection.
const ErrorCodeNoSelection = "no_selection"
