package usecase

import (
	"context"
	"net/http"
	"time"

	"stockroom/internal/domain/model"
	"stockroom/internal/inventory"
	"stockroom/internal/session"
)

type OrderUsecase struct{}

func NewOrderUsecase() *OrderUsecase {
	return &OrderUsecase{}
}

type PlaceOrderInput struct {
	ItemName string
	Quantity string
}

type OrderEntryOutput struct {
	ID               string    `json:"id"`
	ItemName         string    `json:"item_name"`
	Quantity         int64     `json:"quantity"`
	UnitPriceAtOrder string    `json:"unit_price_at_order"`
	OrderValue       string    `json:"order_value"`
	OrderedAt        time.Time `json:"ordered_at"`
}

// PlaceOrderOutput は確定したエントリと、取り直した在庫・履歴のセット
type PlaceOrderOutput struct {
	Entry        OrderEntryOutput   `json:"entry"`
	Stock        StockListOutput    `json:"stock"`
	RecentOrders []OrderEntryOutput `json:"recent_orders"`
}

type OrderTotalOutput struct {
	TotalValue string `json:"total_value"`
}

func (u *OrderUsecase) Place(ctx context.Context, s *session.Session, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if s == nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	if in.ItemName == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "item_name required")
	}

	qty, err := inventory.ParseOrderQuantity(in.Quantity)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	entry, err := s.Journal.Fulfill(s.Ledger, in.ItemName, qty)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	return PlaceOrderOutput{
		Entry:        toOrderEntryOutput(entry),
		Stock:        toStockListOutput(s.Ledger.List("", false)),
		RecentOrders: toOrderEntryOutputs(s.Journal.Recent(inventory.DefaultRecentLimit)),
	}, nil
}

func (u *OrderUsecase) Recent(ctx context.Context, s *session.Session, limit int) ([]OrderEntryOutput, error) {
	if s == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	if limit == 0 {
		limit = inventory.DefaultRecentLimit
	}
	if limit < 0 || limit > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	return toOrderEntryOutputs(s.Journal.Recent(limit)), nil
}

func (u *OrderUsecase) Total(ctx context.Context, s *session.Session) (OrderTotalOutput, error) {
	if s == nil {
		return OrderTotalOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	return OrderTotalOutput{TotalValue: s.Journal.TotalValue().StringFixed(2)}, nil
}

func toOrderEntryOutput(e model.OrderEntry) OrderEntryOutput {
	return OrderEntryOutput{
		ID:               e.ID,
		ItemName:         e.ItemName,
		Quantity:         e.Quantity,
		UnitPriceAtOrder: e.UnitPriceAtOrder.StringFixed(2),
		OrderValue:       e.Value().StringFixed(2),
		OrderedAt:        e.OrderedAt,
	}
}

func toOrderEntryOutputs(entries []model.OrderEntry) []OrderEntryOutput {
	outs := make([]OrderEntryOutput, 0, len(entries))
	for _, e := range entries {
		outs = append(outs, toOrderEntryOutput(e))
	}
	return outs
}
