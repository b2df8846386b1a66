package usecase

import (
	"context"

	"stockroom/internal/session"
)

// SessionStore はセッション発行の約束。実体はsession.Manager。
type SessionStore interface {
	Create() *session.Session
}

type SessionUsecase struct {
	store SessionStore
}

func NewSessionUsecase(store SessionStore) *SessionUsecase {
	return &SessionUsecase{store: store}
}

type SessionOutput struct {
	SessionID string          `json:"session_id"`
	Stock     StockListOutput `json:"stock"`
}

// Create は新規セッションを発行して初期在庫ごと返す
func (u *SessionUsecase) Create(ctx context.Context) (SessionOutput, error) {
	s := u.store.Create()
	return SessionOutput{
		SessionID: s.ID,
		Stock:     toStockListOutput(s.Ledger.List("", false)),
	}, nil
}
