package store

import (
	"context"
	"errors"
	"fmt"

	invErrors "github.com/abgdnv/carstock/internal/inventory/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const carColumns = "id, name, category, quantity, price, description, year, mileage, vin, color"

// PgStore implements CarStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of CarStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a car by its unique identifier.
// Returns ErrCarNotFound if no car exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*Car, error) {
	row := p.db.QueryRow(ctx, "SELECT "+carColumns+" FROM products WHERE id = $1", id)
	car, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invErrors.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to find car by ID: %w", err)
	}
	return car, nil
}

// FindAll retrieves every car ordered by name ascending.
// It returns a slice of cars, which may be empty if no cars exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Car, error) {
	rows, err := p.db.Query(ctx, "SELECT "+carColumns+" FROM products ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to find all cars: %w", err)
	}
	defer rows.Close()

	cars := make([]Car, 0)
	for rows.Next() {
		var c Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.Quantity, &c.Price,
			&c.Description, &c.Year, &c.Mileage, &c.Vin, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan car row: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read car rows: %w", err)
	}
	return cars, nil
}

// Create adds a new car to the store.
// Returns an error if the car cannot be created.
func (p *PgStore) Create(ctx context.Context, car NewCar) (*Car, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO products (name, category, quantity, price, description, year, mileage, vin, color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+carColumns,
		car.Name, car.Category, car.Quantity, car.Price, car.Description,
		car.Year, car.Mileage, car.Vin, car.Color)
	created, err := scanCar(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return created, nil
}

// Update replaces every column of an existing car.
// Returns ErrCarNotFound if no car exists with the given ID.
func (p *PgStore) Update(ctx context.Context, id int64, car NewCar) (*Car, error) {
	row := p.db.QueryRow(ctx,
		`UPDATE products
		 SET name = $2, category = $3, quantity = $4, price = $5,
		     description = $6, year = $7, mileage = $8, vin = $9, color = $10
		 WHERE id = $1
		 RETURNING `+carColumns,
		id, car.Name, car.Category, car.Quantity, car.Price, car.Description,
		car.Year, car.Mileage, car.Vin, car.Color)
	updated, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invErrors.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to update car: %w", err)
	}
	return updated, nil
}

// DeleteByID removes a car by its unique identifier.
// Returns ErrCarNotFound if no car exists with the given ID.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete car by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invErrors.ErrCarNotFound
	}
	return nil
}

// Count reports the number of stored cars.
func (p *PgStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return count, nil
}

// CreateBatch inserts all given cars inside a single transaction so a crash
// mid-batch cannot leave a partially inserted set.
func (p *PgStore) CreateBatch(ctx context.Context, cars []NewCar) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// no-op when the transaction already committed
		_ = tx.Rollback(ctx)
	}()

	for _, car := range cars {
		if _, err := tx.Exec(ctx,
			`INSERT INTO products (name, category, quantity, price, description, year, mileage, vin, color)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			car.Name, car.Category, car.Quantity, car.Price, car.Description,
			car.Year, car.Mileage, car.Vin, car.Color); err != nil {
			return fmt.Errorf("failed to insert car %q: %w", car.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// scanCar scans a single car row.
func scanCar(row pgx.Row) (*Car, error) {
	var c Car
	if err := row.Scan(&c.ID, &c.Name, &c.Category, &c.Quantity, &c.Price,
		&c.Description, &c.Year, &c.Mileage, &c.Vin, &c.Color); err != nil {
		return nil, err
	}
	return &c, nil
}
