package inventory

import (
	"sort"
	"sync"
	"time"

	"stockroom/internal/domain/model"

	"github.com/shopspring/decimal"
)

const DefaultRecentLimit = 5

// IDGenerator / Clock は注入して差し替え可能にする（テストで固定値を使う）

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// Journal は確定済み受注の追記専用ログ。エントリは追記後に変更も削除もしない。
type Journal struct {
	mu      sync.Mutex
	entries []model.OrderEntry
	idGen   IDGenerator
	clock   Clock
}

func NewJournal(idGen IDGenerator, clock Clock) *Journal {
	return &Journal{idGen: idGen, clock: clock}
}

// Fulfill は受注1件の確定。在庫チェックと減算はLedger.Debitの中で
// 1ロックにまとまっていて、失敗したときは何も減らないしログにも残らない。
func (j *Journal) Fulfill(ledger *Ledger, itemName string, quantity int64) (model.OrderEntry, error) {
	if quantity <= 0 {
		return model.OrderEntry{}, newValidationError("order quantity must be > 0")
	}

	debited, err := ledger.Debit(itemName, quantity)
	if err != nil {
		return model.OrderEntry{}, err
	}

	// 名前と単価は受注時点のスナップショット。時刻は秒精度。
	entry := model.OrderEntry{
		ID:               j.idGen.NewID(),
		ItemName:         debited.Name,
		Quantity:         quantity,
		UnitPriceAtOrder: debited.UnitPrice,
		OrderedAt:        j.clock.Now().Truncate(time.Second),
	}

	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()

	return entry, nil
}

// Recent は新しい順にlimit件。時刻降順、同時刻は追記が新しい方を先にする。
func (j *Journal) Recent(limit int) []model.OrderEntry {
	if limit <= 0 {
		return []model.OrderEntry{}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]model.OrderEntry, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		out = append(out, j.entries[i])
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].OrderedAt.After(out[b].OrderedAt)
	})

	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

// TotalValue は表示中の件数に関係なくログ全体の合計。表示用に2桁丸め。
func (j *Journal) TotalValue() decimal.Decimal {
	j.mu.Lock()
	defer j.mu.Unlock()

	total := decimal.Zero
	for _, e := range j.entries {
		total = total.Add(e.Value())
	}
	return total.Round(2)
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
