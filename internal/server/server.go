package server

import (
	"stockroom/internal/handler"
	"stockroom/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はechoを組み立てて全ルートを登録する
func New(
	logger *zap.Logger,
	store middleware.SessionStore,
	sessionH *handler.SessionHandler,
	stockH *handler.StockHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, store, sessionH, stockH, orderH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
