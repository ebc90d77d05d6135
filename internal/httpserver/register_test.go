package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/register"
	"github.com/greenmart/pos/internal/transport"
)

func openSession(t *testing.T, env *testEnv) register.Snapshot {
	t.Helper()
	rec, c := env.doJSON(http.MethodPost, "/api/registers", nil)
	require.NoError(t, env.Registers.OpenSession(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[register.Snapshot](t, rec)
}

func TestRegisterTicketFlow(t *testing.T) {
	env := newTestEnv(t)
	cola := env.seedProduct(models.Product{Name: "Coca Cola 3L", Price: 2500, Category: "Bebidas", Stock: 20})

	snap := openSession(t, env)
	id := snap.ID.String()

	// ring the same product twice
	for i := 0; i < 2; i++ {
		rec, c := env.doJSON(http.MethodPost, "/api/registers/"+id+"/items", transport.AddItemRequest{ProductID: cola.ID})
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, env.Registers.AddItem(c))
		snap = decode[register.Snapshot](t, rec)
	}

	require.Len(t, snap.Lines, 1)
	require.Equal(t, 2, snap.Lines[0].Quantity)
	require.Equal(t, int64(5000), snap.Totals.Subtotal)
	require.Equal(t, []int64{5000, 10000, 20000}, snap.Totals.PresetAmounts)

	// cash checkout with change
	rec, c := env.doJSON(http.MethodPost, "/api/registers/"+id+"/checkout", transport.CheckoutRequest{
		PaymentMethod: "cash",
		CashReceived:  "10000",
	})
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, env.Registers.Checkout(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	result := decode[register.CheckoutResult](t, rec)
	require.Equal(t, int64(5000), result.Change)
	require.Equal(t, int64(5000), result.Order.TotalPrice)

	// stock decremented by the submitted order
	var got models.Product
	require.NoError(t, env.DB.First(&got, cola.ID).Error)
	require.Equal(t, 18, got.Stock)

	// ticket cleared
	rec, c = env.doJSON(http.MethodGet, "/api/registers/"+id, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, env.Registers.GetSession(c))
	require.Empty(t, decode[register.Snapshot](t, rec).Lines)
}

func TestAddItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	snap := openSession(t, env)

	_, c := env.doJSON(http.MethodPost, "/api/registers/"+snap.ID.String()+"/items", transport.AddItemRequest{ProductID: 77})
	c.SetParamNames("id")
	c.SetParamValues(snap.ID.String())
	requireHTTPError(t, env.Registers.AddItem(c), http.StatusNotFound)
}

func TestSetQuantityToZeroRemovesLine(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(models.Product{Name: "Pan", Price: 2000, Category: "Panadería", Stock: 5})
	snap := openSession(t, env)
	id := snap.ID.String()

	_, c := env.doJSON(http.MethodPost, "/api/registers/"+id+"/items", transport.AddItemRequest{ProductID: p.ID})
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, env.Registers.AddItem(c))

	rec, c := env.doJSON(http.MethodPut, "/api/registers/"+id+"/items/1", transport.SetQuantityRequest{Quantity: 0})
	c.SetParamNames("id", "productID")
	c.SetParamValues(id, "1")
	require.NoError(t, env.Registers.SetQuantity(c))
	require.Empty(t, decode[register.Snapshot](t, rec).Lines)
}

func TestCheckoutUnderpaidCashRejected(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(models.Product{Name: "Queso", Price: 2800, Category: "Lácteos", Stock: 5})
	snap := openSession(t, env)
	id := snap.ID.String()

	_, c := env.doJSON(http.MethodPost, "/api/registers/"+id+"/items", transport.AddItemRequest{ProductID: p.ID})
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, env.Registers.AddItem(c))

	_, c = env.doJSON(http.MethodPost, "/api/registers/"+id+"/checkout", transport.CheckoutRequest{
		PaymentMethod: "cash",
		CashReceived:  "1000",
	})
	c.SetParamNames("id")
	c.SetParamValues(id)
	requireHTTPError(t, env.Registers.Checkout(c), http.StatusBadRequest)
}

func TestCheckoutEmptyTicketRejected(t *testing.T) {
	env := newTestEnv(t)
	snap := openSession(t, env)

	_, c := env.doJSON(http.MethodPost, "/api/registers/"+snap.ID.String()+"/checkout", transport.CheckoutRequest{
		PaymentMethod: "card",
	})
	c.SetParamNames("id")
	c.SetParamValues(snap.ID.String())
	requireHTTPError(t, env.Registers.Checkout(c), http.StatusBadRequest)
}

func TestSessionNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSON(http.MethodGet, "/api/registers/2f5bc51e-9f0f-4b35-8128-0b52e2b98cbe", nil)
	c.SetParamNames("id")
	c.SetParamValues("2f5bc51e-9f0f-4b35-8128-0b52e2b98cbe")
	requireHTTPError(t, env.Registers.GetSession(c), http.StatusNotFound)
}

func TestCloseSession(t *testing.T) {
	env := newTestEnv(t)
	snap := openSession(t, env)

	rec, c := env.doJSON(http.MethodDelete, "/api/registers/"+snap.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(snap.ID.String())
	require.NoError(t, env.Registers.CloseSession(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
