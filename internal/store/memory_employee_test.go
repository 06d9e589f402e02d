package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(t *testing.T) EmployeeRepository {
	t.Helper()
	return NewMemoryEmployeeRepository(logger.Nop())
}

func TestMemoryRepository_Create_AssignsSequentialIDs(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.EmployeeDraft{Name: "John Doe", Role: "Developer"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.EmployeeDraft{Name: "John Doe", Role: "Developer"})
	require.NoError(t, err)

	// identical payloads still produce distinct records
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.EmployeeDraft{Name: "John Doe", Role: "Developer"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryRepository_FindByID_NotFound(t *testing.T) {
	repo := newMemoryRepo(t)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestMemoryRepository_FindAll_SnapshotAsSet(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	a, _ := repo.Create(ctx, models.EmployeeDraft{Name: "A", Role: "Dev"})
	b, _ := repo.Create(ctx, models.EmployeeDraft{Name: "B", Role: "Ops"})

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Employee{a, b}, all)
}

func TestMemoryRepository_Update_OverwritesInPlace(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.EmployeeDraft{Name: "John Doe", Role: "Developer"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.EmployeeDraft{Name: "John Doe", Role: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Manager", updated.Role)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestMemoryRepository_Update_MissingRecord(t *testing.T) {
	repo := newMemoryRepo(t)

	_, err := repo.Update(context.Background(), 5, models.EmployeeDraft{Name: "X", Role: "Y"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestMemoryRepository_DeleteByID_Idempotent(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.EmployeeDraft{Name: "John Doe", Role: "Developer"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	// second delete of the same id is a no-op, not an error
	assert.NoError(t, repo.DeleteByID(ctx, created.ID))
}

func TestMemoryRepository_CreateWithID_AdvancesCounter(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	explicit, err := repo.CreateWithID(ctx, 100, models.EmployeeDraft{Name: "E", Role: "Boss"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), explicit.ID)

	// a plain create afterwards must not collide with the explicit id
	next, err := repo.Create(ctx, models.EmployeeDraft{Name: "N", Role: "Dev"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), next.ID)
}

func TestMemoryRepository_CreateWithID_Conflict(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	_, err := repo.CreateWithID(ctx, 7, models.EmployeeDraft{Name: "A", Role: "Dev"})
	require.NoError(t, err)

	_, err = repo.CreateWithID(ctx, 7, models.EmployeeDraft{Name: "B", Role: "Ops"})
	assert.ErrorIs(t, err, ErrEmployeeAlreadyExists)
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestMemoryRepository_ConcurrentCreates_UniqueIDs(t *testing.T) {
	const n = 64

	repo := newMemoryRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			employee, err := repo.Create(ctx, models.EmployeeDraft{
				Name: fmt.Sprintf("worker-%d", i),
				Role: "Developer",
			})
			assert.NoError(t, err)
			ids <- employee.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestMemoryRepository_ConcurrentUpdates_LastWriteWinsWhole(t *testing.T) {
	const m = 32

	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.EmployeeDraft{Name: "initial", Role: "initial"})
	require.NoError(t, err)

	// every submitted payload pairs name and role with the same index, so
	// a torn write would surface as a mismatched pair
	drafts := make([]models.EmployeeDraft, m)
	for i := range drafts {
		drafts[i] = models.EmployeeDraft{
			Name: fmt.Sprintf("name-%d", i),
			Role: fmt.Sprintf("role-%d", i),
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < m; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, updateErr := repo.Update(ctx, created.ID, drafts[i])
			assert.NoError(t, updateErr)
		}(i)
	}
	wg.Wait()

	final, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, drafts, models.EmployeeDraft{Name: final.Name, Role: final.Role},
		"final state must be exactly one of the submitted payloads")
}

func TestMemoryRepository_ConcurrentDeletes_AllSucceed(t *testing.T) {
	const n = 16

	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.EmployeeDraft{Name: "X", Role: "Y"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.DeleteByID(ctx, created.ID))
		}()
	}
	wg.Wait()

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
