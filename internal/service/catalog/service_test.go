package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	catalogRepo "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/catalog"
)

type fakeRepo struct {
	canopies    []domain.Canopy
	packages    []domain.Package
	accessories []domain.Accessory

	orderedErr     error
	orderedCalls   int
	unorderedCalls int

	sortOrderErr   error
	sortOrderCalls []domain.CollectionName
}

func (f *fakeRepo) countFetch(ordered bool) error {
	if ordered {
		f.orderedCalls++
		return f.orderedErr
	}
	f.unorderedCalls++
	return nil
}

func (f *fakeRepo) ListCanopies(ctx context.Context, ordered bool) ([]domain.Canopy, error) {
	if err := f.countFetch(ordered); err != nil {
		return nil, err
	}
	return f.canopies, nil
}

func (f *fakeRepo) ListPackages(ctx context.Context, ordered bool) ([]domain.Package, error) {
	if err := f.countFetch(ordered); err != nil {
		return nil, err
	}
	return f.packages, nil
}

func (f *fakeRepo) ListAccessories(ctx context.Context, ordered bool) ([]domain.Accessory, error) {
	if err := f.countFetch(ordered); err != nil {
		return nil, err
	}
	return f.accessories, nil
}

func (f *fakeRepo) UpsertCanopy(ctx context.Context, canopy *domain.Canopy) (*domain.Canopy, error) {
	saved := *canopy
	if saved.ID == 0 {
		saved.ID = 100
	}
	return &saved, nil
}

func (f *fakeRepo) UpsertPackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	saved := *pkg
	if saved.ID == 0 {
		saved.ID = 100
	}
	return &saved, nil
}

func (f *fakeRepo) UpsertAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	saved := *accessory
	if saved.ID == 0 {
		saved.ID = 100
	}
	return &saved, nil
}

func (f *fakeRepo) DeleteItem(ctx context.Context, collection domain.CollectionName, id int64) error {
	return nil
}

func (f *fakeRepo) UpdateSortOrders(ctx context.Context, collection domain.CollectionName, orderedIDs []int64) error {
	f.sortOrderCalls = append(f.sortOrderCalls, collection)
	return f.sortOrderErr
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, noopLogger{})
}

func TestLoad_PopulatesSnapshot(t *testing.T) {
	repo := &fakeRepo{
		canopies:    []domain.Canopy{{ID: 1, Name: "Arabian Canopy"}},
		packages:    []domain.Package{{ID: 9, Name: "Pakej"}},
		accessories: []domain.Accessory{{ID: 5, Name: "Kipas"}},
	}
	svc := newTestService(repo)

	require.NoError(t, svc.Load(context.Background()))

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot.Canopies, 1)
	assert.Len(t, snapshot.Packages, 1)
	assert.Len(t, snapshot.Accessories, 1)
	assert.Equal(t, domain.DefaultColors, snapshot.Colors)
}

func TestLoad_FallsBackWhenSortColumnMissing(t *testing.T) {
	repo := &fakeRepo{
		canopies:   []domain.Canopy{{ID: 1, Name: "Arabian Canopy"}},
		orderedErr: catalogRepo.ErrSortColumnMissing,
	}
	svc := newTestService(repo)

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, 3, repo.orderedCalls)
	assert.Equal(t, 3, repo.unorderedCalls)
	assert.Len(t, svc.Snapshot().Canopies, 1)
}

func TestLoad_OtherErrorIsFatal(t *testing.T) {
	repo := &fakeRepo{orderedErr: errors.New("connection refused")}
	svc := newTestService(repo)

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestSaveCanopy_RequiresName(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.SaveCanopy(context.Background(), &domain.Canopy{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveCanopy_AssignsIDAndRefreshesSnapshot(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	saved, err := svc.SaveCanopy(context.Background(), &domain.Canopy{Name: "Arabian Canopy"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), saved.ID)
}

func TestReorder_AppliesSnapshotBeforePersisting(t *testing.T) {
	repo := &fakeRepo{
		canopies: []domain.Canopy{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
			{ID: 3, Name: "C"},
		},
	}
	svc := newTestService(repo)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.Reorder(context.Background(), domain.CollectionCanopies, []int64{3, 1, 2}))

	snapshot := svc.Snapshot()
	assert.Equal(t, int64(3), snapshot.Canopies[0].ID)
	assert.Equal(t, 0, snapshot.Canopies[0].SortOrder)
	assert.Equal(t, int64(2), snapshot.Canopies[2].ID)
	assert.Equal(t, 2, snapshot.Canopies[2].SortOrder)
	assert.Equal(t, []domain.CollectionName{domain.CollectionCanopies}, repo.sortOrderCalls)
}

func TestReorder_PersistFailureKeepsOptimisticSnapshot(t *testing.T) {
	repo := &fakeRepo{
		canopies: []domain.Canopy{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
		},
		sortOrderErr: errors.New("db down"),
	}
	svc := newTestService(repo)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.Reorder(context.Background(), domain.CollectionCanopies, []int64{2, 1})
	assert.ErrorIs(t, err, ErrInternal)

	// Снимок уже переставлен и не откатывается
	assert.Equal(t, int64(2), svc.Snapshot().Canopies[0].ID)
}

func TestReorder_RejectsPartialIDList(t *testing.T) {
	repo := &fakeRepo{
		canopies: []domain.Canopy{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
		},
	}
	svc := newTestService(repo)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.Reorder(context.Background(), domain.CollectionCanopies, []int64{2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.sortOrderCalls)
}

func TestReorder_RejectsUnknownCollection(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	err := svc.Reorder(context.Background(), domain.CollectionName("colors"), []int64{1})
	assert.ErrorIs(t, err, ErrInvalidCollection)
}
