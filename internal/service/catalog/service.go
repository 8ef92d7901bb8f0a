package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	catalogRepo "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/catalog"
)

// Service сервис каталога
// Держит в памяти снимок каталога; снимок перечитывается из хранилища
// после каждой административной записи
type Service struct {
	repo      CatalogRepository
	txManager TransactionManager
	logger    Logger

	mu       sync.RWMutex
	snapshot *domain.CatalogSnapshot
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
		snapshot: &domain.CatalogSnapshot{
			Colors: domain.DefaultColors,
		},
	}
}

// Load загружает каталог из хранилища: три коллекции читаются параллельно
// с сортировкой по sort_order. Если колонка sort_order отсутствует,
// все три выборки повторяются параллельно без сортировки.
// Ошибка после повторной выборки фатальна для вызывающего
func (s *Service) Load(ctx context.Context) error {
	snapshot, err := s.fetchAll(ctx, true)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrSortColumnMissing) {
			s.logger.Error("Load: failed to fetch catalog: %v", err)
			return fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}

		s.logger.Warn("Load: sort_order column missing, retrying unordered fetch")
		snapshot, err = s.fetchAll(ctx, false)
		if err != nil {
			s.logger.Error("Load: fallback fetch failed: %v", err)
			return fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Info("Load: catalog loaded (canopies=%d, packages=%d, accessories=%d)",
		len(snapshot.Canopies), len(snapshot.Packages), len(snapshot.Accessories))
	return nil
}

// fetchAll читает три коллекции параллельно и собирает снимок
func (s *Service) fetchAll(ctx context.Context, ordered bool) (*domain.CatalogSnapshot, error) {
	var (
		wg          sync.WaitGroup
		canopies    []domain.Canopy
		packages    []domain.Package
		accessories []domain.Accessory
		errCanopies, errPackages, errAccessories error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		canopies, errCanopies = s.repo.ListCanopies(ctx, ordered)
	}()
	go func() {
		defer wg.Done()
		packages, errPackages = s.repo.ListPackages(ctx, ordered)
	}()
	go func() {
		defer wg.Done()
		accessories, errAccessories = s.repo.ListAccessories(ctx, ordered)
	}()
	wg.Wait()

	for _, err := range []error{errCanopies, errPackages, errAccessories} {
		if err != nil {
			return nil, err
		}
	}

	return &domain.CatalogSnapshot{
		Canopies:    canopies,
		Packages:    packages,
		Accessories: accessories,
		Colors:      domain.DefaultColors,
	}, nil
}

// Snapshot возвращает текущий снимок каталога
// Снимок неизменяем: обновления всегда заменяют указатель целиком
func (s *Service) Snapshot() *domain.CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// refresh перечитывает каталог после записи
// Ошибка перечитывания не отменяет успешную запись: снимок временно
// расходится с хранилищем до следующего обновления
func (s *Service) refresh(ctx context.Context) {
	if err := s.Load(ctx); err != nil {
		s.logger.Error("refresh: failed to refresh catalog snapshot: %v", err)
	}
}

// SaveCanopy создает или обновляет канопи и перечитывает снимок
func (s *Service) SaveCanopy(ctx context.Context, canopy *domain.Canopy) (*domain.Canopy, error) {
	if canopy.Name == "" {
		return nil, fmt.Errorf("%w: canopy name is required", ErrInvalidInput)
	}

	saved, err := s.repo.UpsertCanopy(ctx, canopy)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("SaveCanopy: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveCanopy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveCanopy: saved canopy id=%d name=%q", saved.ID, saved.Name)
	s.refresh(ctx)
	return saved, nil
}

// SavePackage создает или обновляет пакет и перечитывает снимок
func (s *Service) SavePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("%w: package name is required", ErrInvalidInput)
	}

	saved, err := s.repo.UpsertPackage(ctx, pkg)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("SavePackage: repository error: %v", err)
		return nil, fmt.Errorf("%w: SavePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SavePackage: saved package id=%d name=%q", saved.ID, saved.Name)
	s.refresh(ctx)
	return saved, nil
}

// SaveAccessory создает или обновляет аксессуар и перечитывает снимок
func (s *Service) SaveAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	if accessory.Name == "" {
		return nil, fmt.Errorf("%w: accessory name is required", ErrInvalidInput)
	}

	saved, err := s.repo.UpsertAccessory(ctx, accessory)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("SaveAccessory: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveAccessory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveAccessory: saved accessory id=%d name=%q", saved.ID, saved.Name)
	s.refresh(ctx)
	return saved, nil
}

// Delete удаляет элемент коллекции и перечитывает снимок
func (s *Service) Delete(ctx context.Context, collection domain.CollectionName, id int64) error {
	if !collection.IsValid() {
		return ErrInvalidCollection
	}

	if err := s.repo.DeleteItem(ctx, collection, id); err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for %s id=%d: %v", collection, id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted %s id=%d", collection, id)
	s.refresh(ctx)
	return nil
}

// Reorder переупорядочивает коллекцию целиком
// orderedIDs — полный список id коллекции в новом порядке; каждому элементу
// присваивается непрерывный sort_order по позиции (с нуля), и вся коллекция
// перезаписывается одной транзакцией.
//
// Снимок обновляется оптимистично до записи; при ошибке записи снимок
// не откатывается — расхождение с хранилищем устраняется следующим
// полным обновлением. Это осознанный компромисс, ошибка возвращается
// оператору как уведомление
func (s *Service) Reorder(ctx context.Context, collection domain.CollectionName, orderedIDs []int64) error {
	if !collection.IsValid() {
		return ErrInvalidCollection
	}

	if err := s.applyReorderToSnapshot(collection, orderedIDs); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.UpdateSortOrders(txCtx, collection, orderedIDs)
	})
	if err != nil {
		s.logger.Error("Reorder: failed to persist new order for %s: %v", collection, err)
		return fmt.Errorf("%w: Reorder - persist error: %v", ErrInternal, err)
	}

	s.logger.Info("Reorder: persisted new order for %s (%d items)", collection, len(orderedIDs))
	return nil
}

// applyReorderToSnapshot строит новый снимок с коллекцией в новом порядке
func (s *Service) applyReorderToSnapshot(collection domain.CollectionName, orderedIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.snapshot

	switch collection {
	case domain.CollectionCanopies:
		reordered, err := reorderByID(s.snapshot.Canopies, orderedIDs, func(c *domain.Canopy) int64 { return c.ID })
		if err != nil {
			return err
		}
		for i := range reordered {
			reordered[i].SortOrder = i
		}
		next.Canopies = reordered

	case domain.CollectionPackages:
		reordered, err := reorderByID(s.snapshot.Packages, orderedIDs, func(p *domain.Package) int64 { return p.ID })
		if err != nil {
			return err
		}
		for i := range reordered {
			reordered[i].SortOrder = i
		}
		next.Packages = reordered

	case domain.CollectionAccessories:
		reordered, err := reorderByID(s.snapshot.Accessories, orderedIDs, func(a *domain.Accessory) int64 { return a.ID })
		if err != nil {
			return err
		}
		for i := range reordered {
			reordered[i].SortOrder = i
		}
		next.Accessories = reordered
	}

	s.snapshot = &next
	return nil
}

// reorderByID переставляет элементы коллекции в порядке orderedIDs
func reorderByID[T any](items []T, orderedIDs []int64, idOf func(*T) int64) ([]T, error) {
	if len(orderedIDs) != len(items) {
		return nil, fmt.Errorf("%w: reorder must list all %d items, got %d", ErrInvalidInput, len(items), len(orderedIDs))
	}

	byID := make(map[int64]T, len(items))
	for i := range items {
		byID[idOf(&items[i])] = items[i]
	}

	reordered := make([]T, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown item id=%d", ErrInvalidInput, id)
		}
		reordered = append(reordered, item)
	}

	return reordered, nil
}
