package model

import "github.com/shopspring/decimal"

// StockItem は在庫1行。Nameが表示キー（一意制約はかけない、先勝ち）
type StockItem struct {
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Value は数量×単価（保存しない派生値）
func (s StockItem) Value() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(s.Quantity))
}
