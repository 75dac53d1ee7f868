package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a GORM connection over a mocked SQL driver
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormProfileRepository_FindByID(t *testing.T) {
	t.Run("finds existing profile", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		profileID := uuid.New()
		gradeID := uuid.New()
		statusID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "service_number", "first_name", "last_name", "document_id",
			"grade_id", "service_status_id", "active", "version", "created_at", "updated_at",
		}).AddRow(
			profileID, "FAH-0001", "Carlos", "Mejía", "0801-1990-12345",
			gradeID, statusID, true, 1, time.Now(), time.Now(),
		)

		mock.ExpectQuery(`SELECT \* FROM "perfiles_militares" WHERE deleted_at IS NULL AND id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(profileID, 1).
			WillReturnRows(rows)

		profile, err := repo.FindByID(context.Background(), profileID)

		require.NoError(t, err)
		assert.Equal(t, profileID, profile.ID)
		assert.Equal(t, "FAH-0001", profile.ServiceNumber)
		assert.Equal(t, "Carlos Mejía", profile.FullName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		profileID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "perfiles_militares" WHERE deleted_at IS NULL AND id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(profileID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindByID(context.Background(), profileID)

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_ExistsByServiceNumber(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProfileRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "perfiles_militares" WHERE deleted_at IS NULL AND service_number = \$1`).
		WithArgs("FAH-0001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByServiceNumber(context.Background(), "FAH-0001")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProfileRepository_Save(t *testing.T) {
	t.Run("reports concurrency conflict when stored version is newer", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		profile, err := personnel.NewMilitaryProfile("FAH-0002", "Ana", "López", "", uuid.New(), uuid.New())
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "perfiles_militares" SET .* WHERE id = \$\d+ AND version < \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "perfiles_militares" WHERE id = \$1`).
			WithArgs(profile.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err = repo.Save(context.Background(), profile)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts when the row does not exist yet", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		profile, err := personnel.NewMilitaryProfile("FAH-0003", "Luis", "Cruz", "", uuid.New(), uuid.New())
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "perfiles_militares" SET .* WHERE id = \$\d+ AND version < \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "perfiles_militares" WHERE id = \$1`).
			WithArgs(profile.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO "perfiles_militares"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), profile)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_Delete(t *testing.T) {
	t.Run("soft-deletes in place", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		profileID := uuid.New()
		deletedBy := uuid.New()

		mock.ExpectExec(`UPDATE "perfiles_militares" SET .* WHERE id = \$\d+ AND deleted_at IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), profileID, deletedBy)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an already-deleted row reads as not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(gormDB)

		mock.ExpectExec(`UPDATE "perfiles_militares" SET .* WHERE id = \$\d+ AND deleted_at IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
