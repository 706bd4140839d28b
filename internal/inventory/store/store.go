// Package store provides durable storage of car records with identity
// assignment and column-level constraint enforcement.
package store

import "context"

// Car is a row of the products table. Year and Mileage are nullable;
// Description, Vin and Color default to the empty string.
type Car struct {
	ID          int64
	Name        string
	Category    string
	Quantity    int32
	Price       float64
	Description string
	Year        *int32
	Mileage     *int32
	Vin         string
	Color       string
}

// NewCar holds the column values for a car that has not been assigned an id yet.
type NewCar struct {
	Name        string
	Category    string
	Quantity    int32
	Price       float64
	Description string
	Year        *int32
	Mileage     *int32
	Vin         string
	Color       string
}

// CarStore is an interface for car storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type CarStore interface {
	// FindByID retrieves a single car by its unique identifier.
	// Returns ErrCarNotFound if no car exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Car, error)

	// FindAll returns every car ordered by name ascending.
	// Returns an empty slice if no cars exist.
	FindAll(ctx context.Context) ([]Car, error)

	// Create adds a new car and assigns the next identifier.
	// Identifiers are monotonically increasing and never reused.
	Create(ctx context.Context, car NewCar) (*Car, error)

	// Update replaces every column of an existing car; it never merges
	// with prior values. Returns ErrCarNotFound if no car exists with the
	// given ID.
	Update(ctx context.Context, id int64, car NewCar) (*Car, error)

	// DeleteByID removes a car by its ID. The delete is hard and
	// irreversible. Returns ErrCarNotFound if no car exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// Count reports the number of stored cars.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts all given cars as a single atomic batch.
	// Either every car is stored or none is.
	CreateBatch(ctx context.Context, cars []NewCar) error
}
