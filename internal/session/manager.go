package session

import (
	"sync"
	"time"

	"stockroom/internal/domain/model"
	"stockroom/internal/inventory"

	"github.com/shopspring/decimal"
)

// Session は1クライアント分の状態（元の画面はブラウザセッションごとに
// 倉庫を1つ持つ）。プロセス終了で消える、永続化はしない。
type Session struct {
	ID        string
	Ledger    *inventory.Ledger
	Journal   *inventory.Journal
	CreatedAt time.Time
}

// Manager はセッションIDと状態の対応表
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idGen    inventory.IDGenerator
	clock    inventory.Clock
	seed     bool
}

func NewManager(idGen inventory.IDGenerator, clock inventory.Clock, seedDemo bool) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idGen:    idGen,
		clock:    clock,
		seed:     seedDemo,
	}
}

// Create は新しいセッションを発行する。seedDemoならデモ在庫入りで始まる。
func (m *Manager) Create() *Session {
	var seed []model.StockItem
	if m.seed {
		seed = DemoStock()
	}

	s := &Session{
		ID:        m.idGen.NewID(),
		Ledger:    inventory.NewLedger(seed...),
		Journal:   inventory.NewJournal(m.idGen, m.clock),
		CreatedAt: m.clock.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// DemoStock は初期表示用の在庫3行
func DemoStock() []model.StockItem {
	return []model.StockItem{
		{Name: "Laptop Pro", Quantity: 5, UnitPrice: decimal.NewFromFloat(4500.00)},
		{Name: "Monitor 27'", Quantity: 12, UnitPrice: decimal.NewFromFloat(1200.00)},
		{Name: "Klawiatura Mechaniczna", Quantity: 25, UnitPrice: decimal.NewFromFloat(350.00)},
	}
}
