package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEntry は受注1件の履歴。追記後は不変。
// ItemNameとUnitPriceAtOrderは受注時点のスナップショット（商品が後で
// 消えても名前・単価はそのまま残る）
type OrderEntry struct {
	ID               string          `json:"id"`
	ItemName         string          `json:"item_name"`
	Quantity         int64           `json:"quantity"`
	UnitPriceAtOrder decimal.Decimal `json:"unit_price_at_order"`
	OrderedAt        time.Time       `json:"ordered_at"`
}

// Value は数量×受注時単価
func (e OrderEntry) Value() decimal.Decimal {
	return e.UnitPriceAtOrder.Mul(decimal.NewFromInt(e.Quantity))
}
