package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrLimitExceeded       = errors.New("borrowing limit exceeded")
	ErrDuplicateActiveLoan = errors.New("item already on active loan")
	ErrAlreadyWaitlisted   = errors.New("already waitlisted")
	ErrMinHoldingPeriod    = errors.New("minimum holding period not met")
)

// InsufficientStockError carries the first cart line that could not be reserved.
type InsufficientStockError struct {
	ItemUid   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d",
		e.ItemUid, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type LimitExceededError struct {
	Active    int
	Requested int
	Limit     int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("borrowing limit exceeded: active %d, requested %d, limit %d",
		e.Active, e.Requested, e.Limit)
}

func (e *LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}

type DuplicateActiveLoanError struct {
	ItemUid string
}

func (e *DuplicateActiveLoanError) Error() string {
	return fmt.Sprintf("item %s already on active loan", e.ItemUid)
}

func (e *DuplicateActiveLoanError) Is(target error) bool {
	return target == ErrDuplicateActiveLoan
}

type MinHoldingPeriodError struct {
	DaysHeld int
}

func (e *MinHoldingPeriodError) Error() string {
	return fmt.Sprintf("minimum holding period not met: held %d days", e.DaysHeld)
}

func (e *MinHoldingPeriodError) Is(target error) bool {
	return target == ErrMinHoldingPeriod
}
