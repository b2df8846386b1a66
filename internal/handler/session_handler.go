package handler

import (
	"net/http"

	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sessionsのHTTP。セッションを発行してから他のAPIを叩く。
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/sessions", h.create)
}

func (h *SessionHandler) create(c echo.Context) error {
	out, err := h.uc.Create(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
