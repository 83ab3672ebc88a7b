package usecase

import "errors"

var (
	ErrEmptyBatch    = errors.New("batch must contain at least one routing number")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
	ErrAuditDisabled = errors.New("validation audit log is not configured")
)
