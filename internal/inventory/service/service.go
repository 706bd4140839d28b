// Package service provides the implementation of inventory business logic:
// payload defaulting, DTO mapping and orchestration over the car store.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/carstock/internal/inventory/store"
)

// CarService defines the methods for managing the car catalog.
// It abstracts the underlying business logic and data access.
type CarService interface {
	// FindByID retrieves a single car by its unique identifier.
	// Returns ErrCarNotFound if no car exists with the given ID.
	FindByID(ctx context.Context, id int64) (*CarDto, error)

	// FindAll returns every car ordered by name ascending.
	// Returns an empty slice if no cars exist.
	FindAll(ctx context.Context) ([]CarDto, error)

	// Create stores a new car with defaulting applied and returns it
	// including the assigned id.
	Create(ctx context.Context, payload CarPayload) (*CarDto, error)

	// Update replaces the full car record; an omitted optional field is
	// reset to its default, not left unchanged.
	// Returns ErrCarNotFound if no car exists with the given ID.
	Update(ctx context.Context, id int64, payload CarPayload) (*CarDto, error)

	// DeleteByID removes a car by its ID.
	// Returns ErrCarNotFound if no car exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements CarService and provides methods to manage the catalog.
type Service struct {
	repository store.CarStore
}

// NewService creates a new instance of CarService with the provided repository.
func NewService(repo store.CarStore) *Service {
	return &Service{
		repository: repo,
	}
}

// CarDto represents the wire shape of a car record. Year and Mileage
// serialize as null when absent; the remaining optional fields default to "".
type CarDto struct {
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

// CarPayload represents the incoming body for create and update. Required
// numeric fields are pointers so that an explicit 0 is distinguishable from
// an absent field: a quantity of 0 is valid, a price must be present and
// strictly positive.
type CarPayload struct {
	Name        string   `json:"name"        validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Quantity    *int32   `json:"quantity"    validate:"required,min=0"`
	Price       *float64 `json:"price"       validate:"required,gt=0"`
	Description *string  `json:"description"`
	Year        *int32   `json:"year"`
	Mileage     *int32   `json:"mileage"`
	Vin         *string  `json:"vin"`
	Color       *string  `json:"color"`
}

// FindByID retrieves a car by its ID and returns it as a CarDto.
// Returns ErrCarNotFound if no car exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*CarDto, error) {
	car, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car by ID %d: %w", id, err)
	}

	return toDto(car), nil
}

// FindAll retrieves the full catalog ordered by name and returns it as DTOs.
// Returns an empty slice if no cars exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]CarDto, error) {
	cars, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cars: %w", err)
	}
	carDTOs := make([]CarDto, len(cars))

	for i, item := range cars {
		carDTOs[i] = *toDto(&item)
	}

	return carDTOs, nil
}

// Create stores a new car and returns it as a CarDto.
// Returns an error if the car cannot be created.
func (s *Service) Create(ctx context.Context, payload CarPayload) (*CarDto, error) {
	created, err := s.repository.Create(ctx, toNewCar(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	return toDto(created), nil
}

// Update replaces every column of an existing car and returns the updated record.
// Returns ErrCarNotFound if no car exists with the given ID.
func (s *Service) Update(ctx context.Context, id int64, payload CarPayload) (*CarDto, error) {
	updated, err := s.repository.Update(ctx, id, toNewCar(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to update car with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a car by its ID.
// Returns ErrCarNotFound if no car exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.DeleteByID(ctx, id)
}

// toNewCar applies the defaulting rules: absent description/vin/color become
// the empty string, absent year/mileage stay null.
func toNewCar(p CarPayload) store.NewCar {
	return store.NewCar{
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    deref(p.Quantity, 0),
		Price:       deref(p.Price, 0),
		Description: deref(p.Description, ""),
		Year:        p.Year,
		Mileage:     p.Mileage,
		Vin:         deref(p.Vin, ""),
		Color:       deref(p.Color, ""),
	}
}

// toDto converts a store.Car to a CarDto.
func toDto(car *store.Car) *CarDto {
	return &CarDto{
		ID:          car.ID,
		Name:        car.Name,
		Category:    car.Category,
		Quantity:    car.Quantity,
		Price:       car.Price,
		Description: car.Description,
		Year:        car.Year,
		Mileage:     car.Mileage,
		Vin:         car.Vin,
		Color:       car.Color,
	}
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
