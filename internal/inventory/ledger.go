package inventory

import (
	"strconv"
	"strings"
	"sync"

	"stockroom/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Ledger は在庫の現在値を持つ（セッション限りのメモリ状態、永続化しない）。
// 行は追加順を保つ。名前の重複は許す：Find/Debitは常に最初の一致を使う。
type Ledger struct {
	mu    sync.Mutex
	items []model.StockItem
}

func NewLedger(seed ...model.StockItem) *Ledger {
	l := &Ledger{}
	l.items = append(l.items, seed...)
	return l
}

// Add は末尾に1行追加する。重複名のチェックはしない。
func (l *Ledger) Add(name string, quantity int64, unitPrice decimal.Decimal) (model.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.StockItem{}, newValidationError("name required")
	}
	if quantity < 0 {
		return model.StockItem{}, newValidationError("quantity must be >= 0")
	}
	if unitPrice.IsNegative() {
		return model.StockItem{}, newValidationError("unit price must be >= 0")
	}

	item := model.StockItem{Name: name, Quantity: quantity, UnitPrice: unitPrice}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
	return item, nil
}

// RemoveAt は位置指定の削除。削除後は後続行の位置が詰まるので、
// 位置で操作する側は変更のたびに取り直すこと。
func (l *Ledger) RemoveAt(index int) (model.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return model.StockItem{}, &NotFoundError{Identifier: strconv.Itoa(index)}
	}

	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return removed, nil
}

// RemoveByName は名前一致の最初の1行を削除する。
func (l *Ledger) RemoveByName(name string) (model.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, it := range l.items {
		if it.Name == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return it, nil
		}
	}
	return model.StockItem{}, &NotFoundError{Identifier: name}
}

// Update は名前で引いた最初の1行の数量・単価を差し替える。名前自体は変えない。
func (l *Ledger) Update(name string, quantity int64, unitPrice decimal.Decimal) (model.StockItem, error) {
	if quantity < 0 {
		return model.StockItem{}, newValidationError("quantity must be >= 0")
	}
	if unitPrice.IsNegative() {
		return model.StockItem{}, newValidationError("unit price must be >= 0")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Name == name {
			l.items[i].Quantity = quantity
			l.items[i].UnitPrice = unitPrice
			return l.items[i], nil
		}
	}
	return model.StockItem{}, &NotFoundError{Identifier: name}
}

// ApplyBulkEdit は一括編集。全行検証してから全行置換（マージではない）。
// 1行でも数量が負なら全体を棄却して在庫は触らない。
func (l *Ledger) ApplyBulkEdit(rows []model.StockItem) error {
	for _, r := range rows {
		if r.Quantity < 0 {
			return newValidationError("quantity must be >= 0 for %s", r.Name)
		}
	}

	next := make([]model.StockItem, len(rows))
	copy(next, rows)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = next
	return nil
}

// Find は名前完全一致の最初の1行を返す。
func (l *Ledger) Find(name string) (model.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, it := range l.items {
		if it.Name == name {
			return it, nil
		}
	}
	return model.StockItem{}, &NotFoundError{Identifier: name}
}

// List は追加順のコピーを返す。filterが空なら全件、
// あれば名前の部分一致で絞る（caseSensitive=falseなら大文字小文字を無視）。
func (l *Ledger) List(filter string, caseSensitive bool) []model.StockItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.StockItem, 0, len(l.items))
	for _, it := range l.items {
		if !matches(it.Name, filter, caseSensitive) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(name, filter string, caseSensitive bool) bool {
	if filter == "" {
		return true
	}
	if caseSensitive {
		return strings.Contains(name, filter)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// Debit は在庫が足りるときだけ減算する。チェックと減算は同一ロック内なので、
// 同じ商品への同時受注が両方通って負在庫になることはない。
// 減算後の行（単価スナップショット込み）を返す。
func (l *Ledger) Debit(name string, quantity int64) (model.StockItem, error) {
	if quantity <= 0 {
		return model.StockItem{}, newValidationError("order quantity must be > 0")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Name != name {
			continue
		}
		if l.items[i].Quantity < quantity {
			return model.StockItem{}, &InsufficientStockError{
				ItemName:  name,
				Requested: quantity,
				Available: l.items[i].Quantity,
			}
		}
		l.items[i].Quantity -= quantity
		return l.items[i], nil
	}
	return model.StockItem{}, &NotFoundError{Identifier: name}
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// TotalValue は合計金額。表示用に2桁丸め（各行の保存値は丸めない）。
func TotalValue(items []model.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value())
	}
	return total.Round(2)
}
