package handler

import (
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/inventory"
	"stockroom/internal/middleware"
	"stockroom/internal/session"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// InsufficientStockResponse は在庫不足のときだけ使う（残数を画面に出す）
type InsufficientStockResponse struct {
	Error     string `json:"error"`
	Available int64  `json:"available"`
}

// ドメインのエラー種別をHTTPステータスに写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var ve *inventory.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Reason})
	}

	var nfe *inventory.NotFoundError
	if errors.As(err, &nfe) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	var ise *inventory.InsufficientStockError
	if errors.As(err, &ise) {
		return c.JSON(http.StatusConflict, InsufficientStockResponse{
			Error:     ise.Error(),
			Available: ise.Available,
		})
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getSessionFromContext(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(middleware.CtxSessionKey).(*session.Session)
	return s, ok
}

// /stockのHTTP
type StockHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewStockHandler(uc *usecase.InventoryUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

type AddStockRequest struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type UpdateStockRequest struct {
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type BulkEditRequest struct {
	Rows []usecase.BulkEditRow `json:"rows"`
}

// /stock, /stock/{...} を登録
func (h *StockHandler) RegisterRoutes(e *echo.Echo, store middleware.SessionStore) {
	g := e.Group("/stock")
	g.Use(middleware.ResolveSession(store))

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("", h.bulkEdit)
	g.PUT("/:name", h.update)
	g.DELETE("", h.removeByName)
	g.DELETE("/:index", h.removeAt)
}

func (h *StockHandler) list(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	// case_sensitive（default false）
	caseSensitive := false
	if v := c.QueryParam("case_sensitive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid case_sensitive"})
		}
		caseSensitive = b
	}

	out, err := h.uc.List(c.Request().Context(), s, usecase.ListStockInput{
		Filter:        c.QueryParam("filter"),
		CaseSensitive: caseSensitive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) create(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	var req AddStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Add(c.Request().Context(), s, usecase.AddStockInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *StockHandler) update(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), s, c.Param("name"), usecase.UpdateStockInput{
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) bulkEdit(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	var req BulkEditRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.BulkEdit(c.Request().Context(), s, usecase.BulkEditInput{Rows: req.Rows})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) removeAt(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid index"})
	}

	out, err := h.uc.RemoveAt(c.Request().Context(), s, index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) removeByName(c echo.Context) error {
	s, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session required"})
	}

	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name required"})
	}

	out, err := h.uc.RemoveByName(c.Request().Context(), s, name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
