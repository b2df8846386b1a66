package inventory

import "fmt"

// ValidationError は入力不備。状態は変えない、呼び出し側が再入力する。
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError は指定した名前・インデックスに該当する在庫が無い。
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item not found: %s", e.Identifier)
}

// InsufficientStockError は在庫不足。Availableをユーザー向けメッセージに使う。
type InsufficientStockError struct {
	ItemName  string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}
