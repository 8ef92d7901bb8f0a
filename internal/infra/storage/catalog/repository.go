package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/pkg/dbmetrics"
	"github.com/bmc-canopy/BMC-BookingService/pkg/psqlbuilder"
)

// pgUndefinedColumn код ошибки PostgreSQL "undefined_column"
const pgUndefinedColumn = "42703"

// Repository репозиторий каталога: канопи, пакеты и аксессуары
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// isUndefinedColumn возвращает true, если ошибка вызвана отсутствием колонки
func isUndefinedColumn(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUndefinedColumn
}

// ListCanopies возвращает канопи каталога
// При ordered=true сортирует по sort_order; если колонка отсутствует,
// возвращает ErrSortColumnMissing для повторной выборки без сортировки
func (r *Repository) ListCanopies(ctx context.Context, ordered bool) ([]domain.Canopy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"image_url",
		"sizes",
		"sort_order",
	).From("canopies")

	if ordered {
		selectBuilder = selectBuilder.OrderBy("sort_order ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCanopies - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedColumn(err) {
			return nil, ErrSortColumnMissing
		}
		return nil, fmt.Errorf("%w: ListCanopies - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	canopies := make([]domain.Canopy, 0)
	for rows.Next() {
		var (
			canopy    domain.Canopy
			price     sql.NullFloat64
			sizes     []byte
			sortOrder sql.NullInt64
		)

		err := rows.Scan(
			&canopy.ID,
			&canopy.Name,
			&canopy.Description,
			&price,
			&canopy.ImageURL,
			&sizes,
			&sortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCanopies - scan row: %v", ErrScanRow, err)
		}

		canopy.Price = price.Float64
		canopy.SortOrder = int(sortOrder.Int64)

		if len(sizes) > 0 {
			if err := json.Unmarshal(sizes, &canopy.Sizes); err != nil {
				return nil, fmt.Errorf("%w: ListCanopies - decode sizes: %v", ErrScanRow, err)
			}
		}

		canopies = append(canopies, canopy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCanopies - rows error: %v", ErrScanRow, err)
	}

	return canopies, nil
}

// ListPackages возвращает пакеты каталога
func (r *Repository) ListPackages(ctx context.Context, ordered bool) ([]domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"description",
		"items",
		"sort_order",
	).From("packages")

	if ordered {
		selectBuilder = selectBuilder.OrderBy("sort_order ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedColumn(err) {
			return nil, ErrSortColumnMissing
		}
		return nil, fmt.Errorf("%w: ListPackages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]domain.Package, 0)
	for rows.Next() {
		var (
			pkg       domain.Package
			items     []byte
			sortOrder sql.NullInt64
		)

		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Price,
			&pkg.Description,
			&items,
			&sortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPackages - scan row: %v", ErrScanRow, err)
		}

		pkg.SortOrder = int(sortOrder.Int64)

		if len(items) > 0 {
			if err := json.Unmarshal(items, &pkg.Items); err != nil {
				return nil, fmt.Errorf("%w: ListPackages - decode items: %v", ErrScanRow, err)
			}
		}

		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPackages - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// ListAccessories возвращает аксессуары каталога
func (r *Repository) ListAccessories(ctx context.Context, ordered bool) ([]domain.Accessory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"image_url",
		"category",
		"sort_order",
	).From("accessories")

	if ordered {
		selectBuilder = selectBuilder.OrderBy("sort_order ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAccessories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedColumn(err) {
			return nil, ErrSortColumnMissing
		}
		return nil, fmt.Errorf("%w: ListAccessories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	accessories := make([]domain.Accessory, 0)
	for rows.Next() {
		var (
			accessory domain.Accessory
			category  sql.NullString
			sortOrder sql.NullInt64
		)

		err := rows.Scan(
			&accessory.ID,
			&accessory.Name,
			&accessory.Price,
			&accessory.ImageURL,
			&category,
			&sortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAccessories - scan row: %v", ErrScanRow, err)
		}

		accessory.Category = category.String
		accessory.SortOrder = int(sortOrder.Int64)

		accessories = append(accessories, accessory)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAccessories - rows error: %v", ErrScanRow, err)
	}

	return accessories, nil
}

// UpsertCanopy создает канопи (ID == 0) или обновляет существующую
// При обновлении sort_order не затрагивается: порядок меняется только
// через UpdateSortOrders
func (r *Repository) UpsertCanopy(ctx context.Context, canopy *domain.Canopy) (*domain.Canopy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sizes, err := json.Marshal(canopy.Sizes)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertCanopy - encode sizes: %v", ErrEncodeJSON, err)
	}

	if canopy.ID == 0 {
		query, args, err := psqlbuilder.Insert("canopies").
			Columns("name", "description", "price", "image_url", "sizes", "sort_order").
			Values(canopy.Name, canopy.Description, canopy.Price, canopy.ImageURL, sizes, canopy.SortOrder).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: UpsertCanopy - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&canopy.ID); err != nil {
			return nil, fmt.Errorf("%w: UpsertCanopy - execute insert: %v", ErrExecQuery, err)
		}
		return canopy, nil
	}

	query, args, err := psqlbuilder.Update("canopies").
		Set("name", canopy.Name).
		Set("description", canopy.Description).
		Set("price", canopy.Price).
		Set("image_url", canopy.ImageURL).
		Set("sizes", sizes).
		Where(squirrel.Eq{"id": canopy.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertCanopy - build update query: %v", ErrBuildQuery, err)
	}

	if err := execExpectingRow(ctx, executor, query, args, "UpsertCanopy"); err != nil {
		return nil, err
	}

	return canopy, nil
}

// UpsertPackage создает пакет (ID == 0) или обновляет существующий
func (r *Repository) UpsertPackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(pkg.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertPackage - encode items: %v", ErrEncodeJSON, err)
	}

	if pkg.ID == 0 {
		query, args, err := psqlbuilder.Insert("packages").
			Columns("name", "price", "description", "items", "sort_order").
			Values(pkg.Name, pkg.Price, pkg.Description, items, pkg.SortOrder).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: UpsertPackage - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID); err != nil {
			return nil, fmt.Errorf("%w: UpsertPackage - execute insert: %v", ErrExecQuery, err)
		}
		return pkg, nil
	}

	query, args, err := psqlbuilder.Update("packages").
		Set("name", pkg.Name).
		Set("price", pkg.Price).
		Set("description", pkg.Description).
		Set("items", items).
		Where(squirrel.Eq{"id": pkg.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertPackage - build update query: %v", ErrBuildQuery, err)
	}

	if err := execExpectingRow(ctx, executor, query, args, "UpsertPackage"); err != nil {
		return nil, err
	}

	return pkg, nil
}

// UpsertAccessory создает аксессуар (ID == 0) или обновляет существующий
func (r *Repository) UpsertAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if accessory.ID == 0 {
		query, args, err := psqlbuilder.Insert("accessories").
			Columns("name", "price", "image_url", "category", "sort_order").
			Values(accessory.Name, accessory.Price, accessory.ImageURL, accessory.Category, accessory.SortOrder).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: UpsertAccessory - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&accessory.ID); err != nil {
			return nil, fmt.Errorf("%w: UpsertAccessory - execute insert: %v", ErrExecQuery, err)
		}
		return accessory, nil
	}

	query, args, err := psqlbuilder.Update("accessories").
		Set("name", accessory.Name).
		Set("price", accessory.Price).
		Set("image_url", accessory.ImageURL).
		Set("category", accessory.Category).
		Where(squirrel.Eq{"id": accessory.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertAccessory - build update query: %v", ErrBuildQuery, err)
	}

	if err := execExpectingRow(ctx, executor, query, args, "UpsertAccessory"); err != nil {
		return nil, err
	}

	return accessory, nil
}

// DeleteItem удаляет элемент коллекции каталога по id
func (r *Repository) DeleteItem(ctx context.Context, collection domain.CollectionName, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(string(collection)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - build delete query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "DeleteItem")
}

// UpdateSortOrders перезаписывает sort_order всех перечисленных элементов
// Вызывается внутри транзакции менеджера транзакций: вся коллекция
// переупорядочивается атомарно
func (r *Repository) UpdateSortOrders(ctx context.Context, collection domain.CollectionName, orderedIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for position, id := range orderedIDs {
		query, args, err := psqlbuilder.Update(string(collection)).
			Set("sort_order", position).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpdateSortOrders - build update query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			if isUndefinedColumn(err) {
				return ErrSortColumnMissing
			}
			return fmt.Errorf("%w: UpdateSortOrders - execute update: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// execExpectingRow выполняет запрос и требует хотя бы одну затронутую строку
func execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
