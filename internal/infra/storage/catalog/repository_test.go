package catalog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// fakeExecutor записывает выполненные запросы; выборки не поддерживает
type fakeExecutor struct {
	queries []string
	args    [][]interface{}
}

func (e *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.queries = append(e.queries, query)
	e.args = append(e.args, args)
	return fakeResult{rowsAffected: 1}, nil
}

func (e *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	panic("unexpected QueryContext")
}

func (e *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("unexpected QueryRowContext")
}

func TestUpsertCanopy_UpdateKeepsSortOrder(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	canopy := &domain.Canopy{
		ID:    5,
		Name:  "10x10 Canopy",
		Price: 200,
		Sizes: []domain.CanopySize{{Name: "Large", Price: 250}},
	}

	_, err := repo.UpsertCanopy(context.Background(), canopy)
	require.NoError(t, err)
	require.Len(t, executor.queries, 1)

	assert.NotContains(t, executor.queries[0], "sort_order")
	assert.Contains(t, executor.queries[0], "UPDATE canopies")
	assert.Contains(t, executor.args[0], int64(5))
}

func TestUpsertPackage_UpdateKeepsSortOrder(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	pkg := &domain.Package{
		ID:    3,
		Name:  "Pakej Lengkap",
		Price: 1500,
		Items: []string{"10x10 Canopy (Large)"},
	}

	_, err := repo.UpsertPackage(context.Background(), pkg)
	require.NoError(t, err)
	require.Len(t, executor.queries, 1)

	assert.NotContains(t, executor.queries[0], "sort_order")
	assert.Contains(t, executor.queries[0], "UPDATE packages")
}

func TestUpsertAccessory_UpdateKeepsSortOrder(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	accessory := &domain.Accessory{
		ID:    7,
		Name:  "Kipas",
		Price: 30,
	}

	_, err := repo.UpsertAccessory(context.Background(), accessory)
	require.NoError(t, err)
	require.Len(t, executor.queries, 1)

	assert.NotContains(t, executor.queries[0], "sort_order")
	assert.Contains(t, executor.queries[0], "UPDATE accessories")
}
