package middleware

import (
	"net/http"
	"strings"

	"stockroom/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	// c.Get(CtxSessionKey)で*session.Sessionが取れる
	CtxSessionKey = "session"

	SessionHeader = "X-Session-ID"
)

// SessionStore は解決に必要な分だけの約束。実体はsession.Manager。
type SessionStore interface {
	Get(id string) (*session.Session, bool)
}

// ResolveSession はX-Session-IDヘッダからセッションを引いてcontextに積む。
// 未指定・不明なIDは401で止める。
func ResolveSession(store SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
			if id == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("session required"))
			}

			s, ok := store.Get(id)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unknown session"))
			}

			c.Set(CtxSessionKey, s)
			return next(c)
		}
	}
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
