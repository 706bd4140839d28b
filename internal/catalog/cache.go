// Package catalog implements the client side of the inventory service: an
// API client holding an in-process mirror of the full record set. The mirror
// is refreshed wholesale after every mutation, never patched incrementally,
// so the local view always reflects server truth after a round trip. On any
// failed call the last-known-good snapshot is retained untouched.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Car mirrors the wire shape of an inventory record.
type Car struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Year        *int32  `json:"year"`
	Mileage     *int32  `json:"mileage"`
	Vin         string  `json:"vin"`
	Color       string  `json:"color"`
}

// InStock reports the display state derived from the quantity.
func (c Car) InStock() bool {
	return c.Quantity > 0
}

// CarForm is the mutation payload. Pointer fields distinguish an explicit
// zero from an absent value, matching the server's validation rules.
type CarForm struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Quantity    *int32   `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description,omitempty"`
	Year        *int32   `json:"year,omitempty"`
	Mileage     *int32   `json:"mileage,omitempty"`
	Vin         *string  `json:"vin,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// Client talks to the inventory API and keeps the catalog cache.
type Client struct {
	baseURL string
	http    *http.Client

	mu   sync.RWMutex
	cars []Car
}

// NewClient creates a catalog client for the inventory API at baseURL.
// A nil httpClient falls back to a client with a sane default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Reload fetches the full record set and replaces the cached snapshot
// atomically. On failure the previous snapshot stays in place.
func (c *Client) Reload(ctx context.Context) error {
	var cars []Car
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, http.StatusOK, &cars); err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	c.mu.Lock()
	c.cars = cars
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached record set in server order.
func (c *Client) Snapshot() []Car {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]Car, len(c.cars))
	copy(snapshot, c.cars)
	return snapshot
}

// FindByID looks up a cached car, e.g. to pre-populate an edit form.
// A miss (stale id after a concurrent delete) reports false, never panics.
func (c *Client) FindByID(id int64) (Car, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, car := range c.cars {
		if car.ID == id {
			return car, true
		}
	}
	return Car{}, false
}

// Create stores a new car server-side, then refreshes the cache.
func (c *Client) Create(ctx context.Context, form CarForm) (Car, error) {
	var created Car
	if err := c.do(ctx, http.MethodPost, "/api/products", form, http.StatusCreated, &created); err != nil {
		return Car{}, fmt.Errorf("failed to create car: %w", err)
	}
	return created, c.Reload(ctx)
}

// Update replaces a car record server-side, then refreshes the cache.
func (c *Client) Update(ctx context.Context, id int64, form CarForm) (Car, error) {
	var updated Car
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodPut, path, form, http.StatusOK, &updated); err != nil {
		return Car{}, fmt.Errorf("failed to update car %d: %w", id, err)
	}
	return updated, c.Reload(ctx)
}

// SetQuantity re-submits the cached record with a new quantity, the way the
// stock control edits a single field: a full-record replace, not a patch.
// A stale id is a no-op.
func (c *Client) SetQuantity(ctx context.Context, id int64, quantity int32) error {
	car, ok := c.FindByID(id)
	if !ok {
		return nil
	}
	form := CarForm{
		Name:        car.Name,
		Category:    car.Category,
		Quantity:    &quantity,
		Price:       &car.Price,
		Description: &car.Description,
		Year:        car.Year,
		Mileage:     car.Mileage,
		Vin:         &car.Vin,
		Color:       &car.Color,
	}
	_, err := c.Update(ctx, id, form)
	return err
}

// Delete removes a car server-side, then refreshes the cache.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("failed to delete car %d: %w", id, err)
	}
	return c.Reload(ctx)
}

// apiError is the error body shape of the inventory API.
type apiError struct {
	Error string `json:"error"`
}

// do performs a single API round trip and decodes the response into out.
// A response status other than wantStatus is turned into an error carrying
// the server's message.
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
