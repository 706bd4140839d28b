package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abgdnv/carstock/internal/inventory/service"
	"github.com/abgdnv/carstock/internal/inventory/store"
	"github.com/abgdnv/carstock/internal/inventory/transport/rest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient runs the real inventory API over an in-memory store and
// returns a catalog client pointed at it.
func newTestClient(t *testing.T) (*Client, store.CarStore) {
	t.Helper()
	memStore := store.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := rest.NewHandler(service.NewService(memStore), logger)
	mux := chi.NewRouter()
	handler.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client()), memStore
}

func minimalForm(name, category string, quantity int32, price float64) CarForm {
	return CarForm{
		Name:     name,
		Category: category,
		Quantity: &quantity,
		Price:    &price,
	}
}

func Test_Client_Reload(t *testing.T) {
	client, memStore := newTestClient(t)
	ctx := context.Background()
	_, err := store.SeedIfEmpty(ctx, memStore)
	require.NoError(t, err)

	// before the first reload the mirror is empty
	assert.Empty(t, client.Snapshot())

	require.NoError(t, client.Reload(ctx))

	snapshot := client.Snapshot()
	require.Len(t, snapshot, 20)
	// server order (name ascending) is preserved in the mirror
	for i := 1; i < len(snapshot); i++ {
		assert.LessOrEqual(t, snapshot[i-1].Name, snapshot[i].Name)
	}
}

func Test_Client_Reload_FailureKeepsSnapshot(t *testing.T) {
	client, memStore := newTestClient(t)
	ctx := context.Background()
	_, err := store.SeedIfEmpty(ctx, memStore)
	require.NoError(t, err)
	require.NoError(t, client.Reload(ctx))
	require.Len(t, client.Snapshot(), 20)

	// a dead server must not wipe the last-known-good snapshot
	deadSrv := httptest.NewServer(http.NotFoundHandler())
	deadSrv.Close()
	broken := NewClient(deadSrv.URL, nil)
	broken.mu.Lock()
	broken.cars = client.Snapshot()
	broken.mu.Unlock()

	assert.Error(t, broken.Reload(ctx))
	assert.Len(t, broken.Snapshot(), 20)
}

func Test_Client_Create_RefreshesMirror(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Reload(ctx))

	created, err := client.Create(ctx, minimalForm("Test Car", "Sedan", 1, 1000))

	require.NoError(t, err)
	assert.Positive(t, created.ID)
	// defaults applied server-side
	assert.Empty(t, created.Description)
	assert.Empty(t, created.Vin)
	assert.Nil(t, created.Year)

	cached, ok := client.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, cached)
}

func Test_Client_Create_InvalidPayloadKeepsSnapshot(t *testing.T) {
	client, memStore := newTestClient(t)
	ctx := context.Background()
	_, err := store.SeedIfEmpty(ctx, memStore)
	require.NoError(t, err)
	require.NoError(t, client.Reload(ctx))

	// price 0 is rejected server-side
	_, err = client.Create(ctx, minimalForm("Bad Car", "Sedan", 1, 0))

	require.Error(t, err)
	assert.Len(t, client.Snapshot(), 20)
	_, ok := client.FindByID(21)
	assert.False(t, ok)
}

func Test_Client_Update_RefreshesMirror(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	created, err := client.Create(ctx, minimalForm("Test Car", "Sedan", 1, 1000))
	require.NoError(t, err)

	updated, err := client.Update(ctx, created.ID, minimalForm("Renamed Car", "SUV", 2, 2000))

	require.NoError(t, err)
	assert.Equal(t, "Renamed Car", updated.Name)
	cached, ok := client.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Car", cached.Name)
	assert.Equal(t, "SUV", cached.Category)
}

func Test_Client_SetQuantity(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	year := int32(2023)
	form := minimalForm("Test Car", "Sedan", 1, 1000)
	form.Year = &year
	created, err := client.Create(ctx, form)
	require.NoError(t, err)

	require.NoError(t, client.SetQuantity(ctx, created.ID, 7))

	cached, ok := client.FindByID(created.ID)
	require.True(t, ok)
	assert.EqualValues(t, 7, cached.Quantity)
	// the rest of the record survives the full-record replace
	assert.Equal(t, "Test Car", cached.Name)
	require.NotNil(t, cached.Year)
	assert.EqualValues(t, 2023, *cached.Year)
	assert.True(t, cached.InStock())
}

func Test_Client_SetQuantity_StaleIDIsNoOp(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Reload(ctx))

	// a stale id (e.g. racing with a concurrent delete) must not error
	assert.NoError(t, client.SetQuantity(ctx, 9999, 5))
}

func Test_Client_Delete_RefreshesMirror(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	created, err := client.Create(ctx, minimalForm("Test Car", "Sedan", 1, 1000))
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, created.ID))

	_, ok := client.FindByID(created.ID)
	assert.False(t, ok)
	assert.Empty(t, client.Snapshot())
}

func Test_Client_Delete_NotFound(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Reload(ctx))

	err := client.Delete(ctx, 12345)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func Test_Client_FindByID_MissIsNotAPanic(t *testing.T) {
	client, _ := newTestClient(t)

	car, ok := client.FindByID(1)

	assert.False(t, ok)
	assert.Zero(t, car.ID)
}
