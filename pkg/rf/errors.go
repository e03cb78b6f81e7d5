package rf

import "errors"

var (
	ErrCodeNotFound   = errors.New("rf code not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrCardExists     = errors.New("card already exists")
	ErrInvalidCard    = errors.New("invalid card")
	ErrCodeAssigned   = errors.New("code already assigned to another card")
	ErrNotAnAlarm     = errors.New("card is not an alarm")
	ErrMalformedEvent = errors.New("malformed code event")
	// ErrCascadeFailed means the card row is gone but its codes were not
	// removed with it.
	ErrCascadeFailed = errors.New("card removed, bound codes not removed")
)
