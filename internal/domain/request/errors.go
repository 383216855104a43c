package request

import "errors"

var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrEmptyPreviewLink    = errors.New("preview link is required")
	ErrInvalidPreviewLink  = errors.New("preview link must be an absolute http(s) URL")
	ErrApprovalNotAllowed  = errors.New("no preview available to approve")
	ErrActiveRequestExists = errors.New("an active request already exists")
	ErrNotPayable          = errors.New("payment is only possible once a preview is available")
)
