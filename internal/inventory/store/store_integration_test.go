package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	invErrors "github.com/abgdnv/carstock/internal/inventory/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "CARSTOCK_SKIP_INTEGRATION_TESTS"

// CarStoreSuite is a test suite for the PostgreSQL CarStore implementation.
type CarStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       *PgStore
	logger      *slog.Logger
	ctx         context.Context
}

// SetupSuite starts a PostgreSQL container and applies the embedded migrations.
func (s *CarStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbName := "carstock"
	dbUser := "user"
	dbPassword := "password"

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	for i := range 10 {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	require.NoError(s.T(), Migrate(connStr), "Failed to apply migrations")
	s.logger.Info("Migrations applied for integration tests")

	s.store = NewPgStore(s.dbPool)
	s.logger.Info("Initialization complete for CarStoreSuite")
}

// TearDownSuite cleans up resources after all tests in the suite have run.
func (s *CarStoreSuite) TearDownSuite() {
	s.logger.Info("Tearing down suite...")
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

// SetupTest isolates each test by truncating the products table.
func (s *CarStoreSuite) SetupTest() {
	_, err := s.dbPool.Exec(s.ctx, "TRUNCATE TABLE products RESTART IDENTITY")
	require.NoError(s.T(), err, "Failed to truncate products table")
}

func TestCarStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(CarStoreSuite))
}

func (s *CarStoreSuite) TestCreateAssignsIncreasingIDs() {
	var lastID int64
	for _, name := range []string{"Camry", "Accord", "Altima"} {
		created, err := s.store.Create(s.ctx, NewCar{Name: name, Category: "Sedan", Quantity: 1, Price: 1000})
		require.NoError(s.T(), err)
		assert.Greater(s.T(), created.ID, lastID)
		lastID = created.ID
	}
}

func (s *CarStoreSuite) TestIDsAreNeverReused() {
	first, err := s.store.Create(s.ctx, NewCar{Name: "First", Category: "Sedan", Quantity: 1, Price: 1000})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.DeleteByID(s.ctx, first.ID))

	second, err := s.store.Create(s.ctx, NewCar{Name: "Second", Category: "Sedan", Quantity: 1, Price: 1000})
	require.NoError(s.T(), err)
	assert.Greater(s.T(), second.ID, first.ID)
}

func (s *CarStoreSuite) TestFindAllSortedByName() {
	for _, name := range []string{"Zafira", "Accord", "Mustang"} {
		_, err := s.store.Create(s.ctx, NewCar{Name: name, Category: "Sedan", Quantity: 1, Price: 1000})
		require.NoError(s.T(), err)
	}

	list, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.Equal(s.T(), "Accord", list[0].Name)
	assert.Equal(s.T(), "Mustang", list[1].Name)
	assert.Equal(s.T(), "Zafira", list[2].Name)
}

func (s *CarStoreSuite) TestRoundTripWithOptionalFields() {
	year := int32(2023)
	mileage := int32(2000)
	created, err := s.store.Create(s.ctx, NewCar{
		Name:        "Ford Mustang GT",
		Category:    "Coupe",
		Quantity:    1,
		Price:       46999.99,
		Description: "Iconic American muscle car",
		Year:        &year,
		Mileage:     &mileage,
		Vin:         "1FA6P8CF9M5123456",
		Color:       "Race Red",
	})
	require.NoError(s.T(), err)

	found, err := s.store.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created, found)
	require.NotNil(s.T(), found.Year)
	assert.EqualValues(s.T(), 2023, *found.Year)
}

func (s *CarStoreSuite) TestRoundTripWithNullOptionals() {
	created, err := s.store.Create(s.ctx, NewCar{Name: "Bare", Category: "Sedan", Quantity: 0, Price: 1})
	require.NoError(s.T(), err)

	found, err := s.store.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found.Year)
	assert.Nil(s.T(), found.Mileage)
	assert.Empty(s.T(), found.Description)
	assert.Empty(s.T(), found.Vin)
	assert.Empty(s.T(), found.Color)
}

func (s *CarStoreSuite) TestCreateRejectsMissingRequiredColumns() {
	// NOT NULL is enforced at the storage layer
	_, err := s.dbPool.Exec(s.ctx, "INSERT INTO products (category, quantity, price) VALUES ('Sedan', 1, 1000)")
	assert.Error(s.T(), err)
}

func (s *CarStoreSuite) TestUpdateReplacesEveryColumn() {
	year := int32(2022)
	created, err := s.store.Create(s.ctx, NewCar{
		Name: "Accord", Category: "Sedan", Quantity: 2, Price: 27999.99,
		Vin: "2HGFC2F59MH542321", Color: "Blue", Year: &year,
	})
	require.NoError(s.T(), err)

	updated, err := s.store.Update(s.ctx, created.ID, NewCar{
		Name: "Accord", Category: "Sedan", Quantity: 5, Price: 26999.99,
	})
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 5, updated.Quantity)
	assert.Empty(s.T(), updated.Vin)
	assert.Empty(s.T(), updated.Color)
	assert.Nil(s.T(), updated.Year)
}

func (s *CarStoreSuite) TestUpdateNotFound() {
	_, err := s.store.Update(s.ctx, 424242, NewCar{Name: "Ghost", Category: "Sedan", Quantity: 1, Price: 1})
	assert.ErrorIs(s.T(), err, invErrors.ErrCarNotFound)
}

func (s *CarStoreSuite) TestDeleteByID() {
	created, err := s.store.Create(s.ctx, NewCar{Name: "Doomed", Category: "Sedan", Quantity: 1, Price: 1})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.DeleteByID(s.ctx, created.ID))

	_, err = s.store.FindByID(s.ctx, created.ID)
	assert.ErrorIs(s.T(), err, invErrors.ErrCarNotFound)
	assert.ErrorIs(s.T(), s.store.DeleteByID(s.ctx, created.ID), invErrors.ErrCarNotFound)
}

func (s *CarStoreSuite) TestSeedIfEmpty() {
	seeded, err := SeedIfEmpty(s.ctx, s.store)
	require.NoError(s.T(), err)
	assert.True(s.T(), seeded)

	count, err := s.store.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 20, count)

	// idempotent: a second startup does not re-seed
	seeded, err = SeedIfEmpty(s.ctx, s.store)
	require.NoError(s.T(), err)
	assert.False(s.T(), seeded)

	list, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 20)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(s.T(), list[i-1].Name, list[i].Name)
	}
}
