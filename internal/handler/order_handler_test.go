package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderEntryResponse struct {
	ID               string `json:"id"`
	ItemName         string `json:"item_name"`
	Quantity         int64  `json:"quantity"`
	UnitPriceAtOrder string `json:"unit_price_at_order"`
	OrderValue       string `json:"order_value"`
}

type placeOrderResponse struct {
	Entry        orderEntryResponse   `json:"entry"`
	Stock        stockListResponse    `json:"stock"`
	RecentOrders []orderEntryResponse `json:"recent_orders"`
}

type orderTotalResponse struct {
	TotalValue string `json:"total_value"`
}

func TestOrders_Place(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	rec := doJSON(t, h, http.MethodPost, "/orders", sid,
		`{"item_name":"Laptop Pro","quantity":"3"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var res placeOrderResponse
	decode(t, rec, &res)
	assert.Equal(t, "13500.00", res.Entry.OrderValue)
	assert.Equal(t, int64(2), res.Stock.Items[0].Quantity)
	assert.Equal(t, 1, len(res.RecentOrders))
}

func TestOrders_Place_InsufficientStock_CarriesAvailable(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	rec := doJSON(t, h, http.MethodPost, "/orders", sid,
		`{"item_name":"Laptop Pro","quantity":"10"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var res insufficientResponse
	decode(t, rec, &res)
	assert.Equal(t, int64(5), res.Available)
	assert.Contains(t, res.Error, "insufficient stock")

	//失敗した受注は在庫も履歴も変えない
	list := doJSON(t, h, http.MethodGet, "/stock?filter=Laptop", sid, "")
	var stock stockListResponse
	decode(t, list, &stock)
	assert.Equal(t, int64(5), stock.Items[0].Quantity)
}

func TestOrders_Place_UnknownItem(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	rec := doJSON(t, h, http.MethodPost, "/orders", sid,
		`{"item_name":"Projector","quantity":"1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrders_Place_NonPositiveQuantity(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	rec := doJSON(t, h, http.MethodPost, "/orders", sid,
		`{"item_name":"Laptop Pro","quantity":"0"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrders_Recent_DefaultAndExplicitLimit(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	for i := 0; i < 7; i++ {
		rec := doJSON(t, h, http.MethodPost, "/orders", sid,
			`{"item_name":"Klawiatura Mechaniczna","quantity":"1"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/orders/recent", sid, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var res []orderEntryResponse
	decode(t, rec, &res)
	assert.Equal(t, 5, len(res))

	rec = doJSON(t, h, http.MethodGet, "/orders/recent?limit=2", sid, "")
	decode(t, rec, &res)
	assert.Equal(t, 2, len(res))

	rec = doJSON(t, h, http.MethodGet, "/orders/recent?limit=abc", sid, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrders_Total_CoversWholeJournal(t *testing.T) {
	h, _ := newTestServer()
	sid := createSession(t, h)

	for i := 0; i < 6; i++ {
		rec := doJSON(t, h, http.MethodPost, "/orders", sid,
			`{"item_name":"Klawiatura Mechaniczna","quantity":"1"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/orders/total", sid, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var res orderTotalResponse
	decode(t, rec, &res)
	assert.Equal(t, "2100.00", res.TotalValue)
}

func TestOrders_RequireSession(t *testing.T) {
	h, _ := newTestServer()

	rec := doJSON(t, h, http.MethodPost, "/orders", "",
		`{"item_name":"Laptop Pro","quantity":"1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
