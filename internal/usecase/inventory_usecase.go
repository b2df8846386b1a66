package usecase

import (
	"context"
	"net/http"

	"stockroom/internal/domain/model"
	"stockroom/internal/inventory"
	"stockroom/internal/session"
)

type InventoryUsecase struct{}

func NewInventoryUsecase() *InventoryUsecase {
	return &InventoryUsecase{}
}

// 数量・単価は画面のテキスト入力をそのまま受けるので文字列

type AddStockInput struct {
	Name      string
	Quantity  string
	UnitPrice string
}

type UpdateStockInput struct {
	Quantity  string
	UnitPrice string
}

type BulkEditRow struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type BulkEditInput struct {
	Rows []BulkEditRow
}

type ListStockInput struct {
	Filter        string
	CaseSensitive bool
}

type StockItemOutput struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Value     string `json:"value"`
}

type StockListOutput struct {
	Items      []StockItemOutput `json:"items"`
	TotalValue string            `json:"total_value"`
}

// StockMutationOutput は変更した行と、取り直した一覧のセット。
// 画面側は毎回これで表を描き直す（全再描画の置き換え）。
type StockMutationOutput struct {
	Item  StockItemOutput `json:"item"`
	Stock StockListOutput `json:"stock"`
}

func (u *InventoryUsecase) List(ctx context.Context, s *session.Session, in ListStockInput) (StockListOutput, error) {
	if s == nil {
		return StockListOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	if len(in.Filter) > 100 {
		return StockListOutput{}, NewHTTPError(http.StatusBadRequest, "filter too long")
	}

	items := s.Ledger.List(in.Filter, in.CaseSensitive)
	return toStockListOutput(items), nil
}

func (u *InventoryUsecase) Add(ctx context.Context, s *session.Session, in AddStockInput) (StockMutationOutput, error) {
	if s == nil {
		return StockMutationOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}

	qty, err := inventory.ParseQuantity(in.Quantity)
	if err != nil {
		return StockMutationOutput{}, err
	}
	price, err := inventory.ParseUnitPrice(in.UnitPrice)
	if err != nil {
		return StockMutationOutput{}, err
	}

	item, err := s.Ledger.Add(in.Name, qty, price)
	if err != nil {
		return StockMutationOutput{}, err
	}
	return toStockMutationOutput(item, s), nil
}

func (u *InventoryUsecase) Update(ctx context.Context, s *session.Session, name string, in UpdateStockInput) (StockMutationOutput, error) {
	if s == nil {
		return StockMutationOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	if name == "" {
		return StockMutationOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	qty, err := inventory.ParseQuantity(in.Quantity)
	if err != nil {
		return StockMutationOutput{}, err
	}
	price, err := inventory.ParseUnitPrice(in.UnitPrice)
	if err != nil {
		return StockMutationOutput{}, err
	}

	item, err := s.Ledger.Update(name, qty, price)
	if err != nil {
		return StockMutationOutput{}, err
	}
	return toStockMutationOutput(item, s), nil
}

// BulkEdit は全行まとめて検証してから置換する。数値化に失敗した行や
// 負の数量が1行でもあれば、在庫には一切手を付けずに棄却する。
func (u *InventoryUsecase) BulkEdit(ctx context.Context, s *session.Session, in BulkEditInput) (StockListOutput, error) {
	if s == nil {
		return StockListOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}

	rows := make([]model.StockItem, 0, len(in.Rows))
	for _, r := range in.Rows {
		qty, err := inventory.ParseQuantity(r.Quantity)
		if err != nil {
			return StockListOutput{}, err
		}
		price, err := inventory.ParseUnitPrice(r.UnitPrice)
		if err != nil {
			return StockListOutput{}, err
		}
		rows = append(rows, model.StockItem{Name: r.Name, Quantity: qty, UnitPrice: price})
	}

	if err := s.Ledger.ApplyBulkEdit(rows); err != nil {
		return StockListOutput{}, err
	}
	return toStockListOutput(s.Ledger.List("", false)), nil
}

func (u *InventoryUsecase) RemoveAt(ctx context.Context, s *session.Session, index int) (StockMutationOutput, error) {
	if s == nil {
		return StockMutationOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}

	item, err := s.Ledger.RemoveAt(index)
	if err != nil {
		return StockMutationOutput{}, err
	}
	return toStockMutationOutput(item, s), nil
}

func (u *InventoryUsecase) RemoveByName(ctx context.Context, s *session.Session, name string) (StockMutationOutput, error) {
	if s == nil {
		return StockMutationOutput{}, NewHTTPError(http.StatusUnauthorized, "session required")
	}
	if name == "" {
		return StockMutationOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	item, err := s.Ledger.RemoveByName(name)
	if err != nil {
		return StockMutationOutput{}, err
	}
	return toStockMutationOutput(item, s), nil
}

func toStockItemOutput(it model.StockItem) StockItemOutput {
	return StockItemOutput{
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice.StringFixed(2),
		Value:     it.Value().StringFixed(2),
	}
}

func toStockListOutput(items []model.StockItem) StockListOutput {
	outs := make([]StockItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, toStockItemOutput(it))
	}
	return StockListOutput{
		Items:      outs,
		TotalValue: inventory.TotalValue(items).StringFixed(2),
	}
}

func toStockMutationOutput(it model.StockItem, s *session.Session) StockMutationOutput {
	return StockMutationOutput{
		Item:  toStockItemOutput(it),
		Stock: toStockListOutput(s.Ledger.List("", false)),
	}
}
