package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stockroom/internal/inventory"
	"stockroom/internal/session"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// =====================
// helper
// =====================

type ucIDGen struct{ n int }

func (g *ucIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("uc-id-%d", g.n)
}

type ucClock struct{ t time.Time }

func (c *ucClock) Now() time.Time { return c.t }

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	clock := &ucClock{t: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(&ucIDGen{}, clock, true)
	return m.Create()
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), want)
}

// =====================
// List
// =====================

func TestInventoryUsecase_List_NoSession(t *testing.T) {
	uc := usecase.NewInventoryUsecase()

	_, err := uc.List(context.Background(), nil, usecase.ListStockInput{})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestInventoryUsecase_List_WithFilter(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.List(context.Background(), s, usecase.ListStockInput{Filter: "lap"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, "Laptop Pro", out.Items[0].Name)
	assert.Equal(t, "22500.00", out.TotalValue)
}

func TestInventoryUsecase_List_TotalValueOfDemoStock(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.List(context.Background(), s, usecase.ListStockInput{})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(out.Items))
	assert.Equal(t, "45650.00", out.TotalValue)
}

// =====================
// Add
// =====================

func TestInventoryUsecase_Add_ParsesStringInputs(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.Add(context.Background(), s, usecase.AddStockInput{
		Name:      "Mouse",
		Quantity:  "10",
		UnitPrice: "89.9",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Mouse", out.Item.Name)
	assert.Equal(t, "89.90", out.Item.UnitPrice)
	assert.Equal(t, "899.00", out.Item.Value)

	//一覧も取り直して返る（画面の再描画用）
	assert.Equal(t, 4, len(out.Stock.Items))
}

func TestInventoryUsecase_Add_NonNumericQuantity(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.Add(context.Background(), s, usecase.AddStockInput{
		Name:      "Mouse",
		Quantity:  "dziesięć",
		UnitPrice: "10.00",
	})

	var ve *inventory.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, 3, s.Ledger.Len())
}

func TestInventoryUsecase_Add_NonNumericPrice(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.Add(context.Background(), s, usecase.AddStockInput{
		Name:      "Mouse",
		Quantity:  "1",
		UnitPrice: "cheap",
	})
	assertErrContains(t, err, "unit price must be a number")
}

// =====================
// Update / Remove
// =====================

func TestInventoryUsecase_Update(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.Update(context.Background(), s, "Laptop Pro", usecase.UpdateStockInput{
		Quantity:  "2",
		UnitPrice: "4400.00",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Item.Quantity)
	assert.Equal(t, "4400.00", out.Item.UnitPrice)
}

func TestInventoryUsecase_Update_UnknownItem(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.Update(context.Background(), s, "Projector", usecase.UpdateStockInput{
		Quantity:  "2",
		UnitPrice: "1.00",
	})

	var nfe *inventory.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestInventoryUsecase_RemoveAt_IndexRebinds(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.RemoveAt(context.Background(), s, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop Pro", out.Item.Name)
	assert.Equal(t, 2, len(out.Stock.Items))

	out, err = uc.RemoveAt(context.Background(), s, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Monitor 27'", out.Item.Name)
}

func TestInventoryUsecase_RemoveByName_EmptyName(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.RemoveByName(context.Background(), s, "")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// =====================
// BulkEdit
// =====================

func TestInventoryUsecase_BulkEdit_ReplacesLedger(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	out, err := uc.BulkEdit(context.Background(), s, usecase.BulkEditInput{
		Rows: []usecase.BulkEditRow{
			{Name: "Laptop Pro", Quantity: "4", UnitPrice: "4400.00"},
			{Name: "Monitor 27'", Quantity: "10", UnitPrice: "1100.00"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, 2, s.Ledger.Len())
}

func TestInventoryUsecase_BulkEdit_RejectsWholeBatchOnBadRow(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.BulkEdit(context.Background(), s, usecase.BulkEditInput{
		Rows: []usecase.BulkEditRow{
			{Name: "Laptop Pro", Quantity: "-1", UnitPrice: "4500.00"},
			{Name: "Monitor 27'", Quantity: "12", UnitPrice: "1200.00"},
		},
	})
	assertErrContains(t, err, "quantity must be >= 0")

	//棄却時は3行とも手付かず
	assert.Equal(t, 3, s.Ledger.Len())
	laptop, _ := s.Ledger.Find("Laptop Pro")
	assert.Equal(t, int64(5), laptop.Quantity)
}

func TestInventoryUsecase_BulkEdit_ParseFailureAlsoRejectsBatch(t *testing.T) {
	uc := usecase.NewInventoryUsecase()
	s := newTestSession(t)

	_, err := uc.BulkEdit(context.Background(), s, usecase.BulkEditInput{
		Rows: []usecase.BulkEditRow{
			{Name: "Laptop Pro", Quantity: "four", UnitPrice: "4500.00"},
		},
	})

	var ve *inventory.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, 3, s.Ledger.Len())
}
