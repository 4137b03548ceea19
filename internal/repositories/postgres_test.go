package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgresStores(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	accountWriter := NewAccountWriteRepository(db, nil)
	accountReader := NewAccountReadRepository(db)
	jobWriter := NewJobWriteRepository(db, nil)
	jobReader := NewJobReadRepository(db)

	// Init is idempotent.
	for i := 0; i < 2; i++ {
		require.NoError(t, accountWriter.Init(ctx))
		require.NoError(t, jobWriter.Init(ctx))
	}

	alice, err := accountWriter.Save(ctx, "Alice", "a@b.com", "hashed-secret1")
	require.NoError(t, err)
	bob, err := accountWriter.Save(ctx, "Bob", "bob@b.com", "hashed-secret2")
	require.NoError(t, err)

	t.Run("FindByEmail", func(t *testing.T) {
		found, err := accountReader.FindByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, alice.ID, found.ID)
		assert.Equal(t, "hashed-secret1", found.PasswordHash)

		missing, err := accountReader.FindByEmail(ctx, "nobody@b.com")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		_, err := accountWriter.Save(ctx, "Alice Two", "a@b.com", "hashed-secret3")
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("Schema rejects invalid accounts", func(t *testing.T) {
		_, err := accountWriter.Save(ctx, "Al", "al@b.com", "hashed-secret")
		assert.ErrorIs(t, err, models.ErrValidation)

		_, err = accountWriter.Save(ctx, "Alfred", "not-an-email", "hashed-secret")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("Job lifecycle", func(t *testing.T) {
		job, err := jobWriter.Create(ctx, alice.ID, models.JobInput{Role: "Engineer", Company: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPending, job.Status)

		jobs, err := jobReader.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Alice", jobs[0].CreatorName)

		_, err = jobReader.GetByIDAndOwner(ctx, job.ID, bob.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		time.Sleep(10 * time.Millisecond)
		empty := models.JobStatus("")
		updated, err := jobWriter.Update(ctx, job.ID, alice.ID, models.JobPatch{Status: &empty})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPending, updated.Status)
		assert.Equal(t, "Engineer", updated.Role)
		assert.True(t, updated.UpdatedAt.After(job.UpdatedAt))

		interview := models.JobStatusInterview
		updated, err = jobWriter.Update(ctx, job.ID, alice.ID, models.JobPatch{Status: &interview})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusInterview, updated.Status)

		_, err = jobWriter.Update(ctx, job.ID, bob.ID, models.JobPatch{Status: &interview})
		assert.ErrorIs(t, err, models.ErrNotFound)

		n, err := jobWriter.Delete(ctx, job.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		n, err = jobWriter.Delete(ctx, job.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = jobWriter.Delete(ctx, job.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("Account deletion cascades", func(t *testing.T) {
		_, err := jobWriter.Create(ctx, bob.ID, models.JobInput{Role: "Designer", Company: "Globex"})
		require.NoError(t, err)

		n, err := accountWriter.Delete(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		var count int
		require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM jobs WHERE created_by = $1", bob.ID))
		assert.Zero(t, count)
	})

	t.Run("Job for deleted account is unauthorized", func(t *testing.T) {
		_, err := jobWriter.Create(ctx, bob.ID, models.JobInput{Role: "Designer", Company: "Globex"})
		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.NotContains(t, err.Error(), "violates")
	})
}
