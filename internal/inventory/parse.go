package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// フォーム入力は文字列で届くので、数値化の失敗はValidationErrorにする

func ParseQuantity(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, newValidationError("quantity must be a whole number")
	}
	return v, nil
}

func ParseUnitPrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, newValidationError("unit price must be a number like 1200.00")
	}
	return d, nil
}

// 受注数量は正の整数のみ
func ParseOrderQuantity(s string) (int64, error) {
	v, err := ParseQuantity(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, newValidationError("order quantity must be > 0")
	}
	return v, nil
}
