package server

import (
	"stockroom/internal/handler"
	"stockroom/internal/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	store middleware.SessionStore,
	sessionH *handler.SessionHandler,
	stockH *handler.StockHandler,
	orderH *handler.OrderHandler,
) {
	sessionH.RegisterRoutes(e)
	stockH.RegisterRoutes(e, store)
	orderH.RegisterRoutes(e, store)
}
