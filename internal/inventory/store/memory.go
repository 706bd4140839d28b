package store

import (
	"context"
	"sort"
	"sync"

	invErrors "github.com/abgdnv/carstock/internal/inventory/errors"
)

// MemStore implements CarStore using an in-memory map. It backs unit tests
// and preserves the same identity contract as the database store:
// monotonically increasing ids that are never reused after deletion.
type MemStore struct {
	mu     sync.RWMutex
	cars   map[int64]Car
	nextID int64
}

// NewMemStore creates a new empty in-memory CarStore.
func NewMemStore() *MemStore {
	return &MemStore{
		cars:   make(map[int64]Car),
		nextID: 1,
	}
}

// FindByID retrieves a car by its ID.
func (s *MemStore) FindByID(_ context.Context, id int64) (*Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cars[id]
	if !ok {
		return nil, invErrors.ErrCarNotFound
	}
	return &c, nil
}

// FindAll retrieves every car sorted by name ascending.
func (s *MemStore) FindAll(_ context.Context) ([]Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Car, 0, len(s.cars))
	for _, c := range s.cars {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// Create assigns the next id and stores the car.
func (s *MemStore) Create(_ context.Context, car NewCar) (*Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.insert(car)
	return &created, nil
}

// Update replaces every column of an existing car.
func (s *MemStore) Update(_ context.Context, id int64, car NewCar) (*Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return nil, invErrors.ErrCarNotFound
	}
	updated := Car{
		ID:          id,
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
	s.cars[id] = updated
	return &updated, nil
}

// DeleteByID deletes a car by its ID. The id is not reused afterwards.
func (s *MemStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return invErrors.ErrCarNotFound
	}
	delete(s.cars, id)
	return nil
}

// Count reports the number of stored cars.
func (s *MemStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.cars)), nil
}

// CreateBatch inserts all cars under a single lock acquisition.
func (s *MemStore) CreateBatch(_ context.Context, cars []NewCar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, car := range cars {
		s.insert(car)
	}
	return nil
}

// insert stores a car under the next id. Caller must hold the write lock.
func (s *MemStore) insert(car NewCar) Car {
	created := Car{
		ID:          s.nextID,
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
	s.nextID++
	s.cars[created.ID] = created
	return created
}
