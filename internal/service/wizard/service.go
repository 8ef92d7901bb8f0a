package wizard

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// session одна сессия мастера бронирования
// Состояние выбора живет в памяти сервиса и мутируется только под
// блокировкой хранилища через именованные переходы domain.SelectionState
type session struct {
	id        string
	state     *domain.SelectionState
	updatedAt time.Time
}

// View снимок сессии для отдачи наружу
type View struct {
	SessionID  string
	State      *domain.SelectionState
	Steps      []string
	Financials domain.Financials
}

// Service сервис сессий мастера бронирования
type Service struct {
	catalog CatalogProvider
	ttl     time.Duration
	logger  Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService создает новый экземпляр сервиса мастера
func NewService(catalog CatalogProvider, ttl time.Duration, logger Logger) *Service {
	return &Service{
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// newSessionID генерирует идентификатор сессии
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: failed to generate session id: %v", ErrInternal, err)
	}
	return hex.EncodeToString(buf), nil
}

// StartSession создает новую сессию с пустым состоянием выбора
func (s *Service) StartSession() (*View, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	state := domain.NewSelectionState(s.catalog.Snapshot().DefaultColor())

	s.mu.Lock()
	s.sweepExpiredLocked()
	s.sessions[id] = &session{id: id, state: state, updatedAt: time.Now()}
	s.mu.Unlock()

	s.logger.Info("StartSession: created session %s", id)
	return s.view(id, state), nil
}

// sweepExpiredLocked удаляет истекшие сессии; вызывается под блокировкой
func (s *Service) sweepExpiredLocked() {
	deadline := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(deadline) {
			delete(s.sessions, id)
		}
	}
}

// withSession выполняет fn над состоянием сессии под блокировкой
func (s *Service) withSession(sessionID string, fn func(state *domain.SelectionState) error) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || time.Since(sess.updatedAt) > s.ttl {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}

	if err := fn(sess.state); err != nil {
		return nil, err
	}

	sess.updatedAt = time.Now()
	return s.view(sessionID, sess.state), nil
}

// view собирает снимок сессии с производным расчетом стоимости
// Состояние клонируется, чтобы читатели не видели последующих мутаций
func (s *Service) view(sessionID string, state *domain.SelectionState) *View {
	clone := state.Clone()
	return &View{
		SessionID:  sessionID,
		State:      clone,
		Steps:      domain.ActiveSteps(clone.Mode),
		Financials: domain.CalculateFinancials(clone, s.catalog.Snapshot()),
	}
}

// Get возвращает состояние сессии и расчет стоимости
func (s *Service) Get(sessionID string) (*View, error) {
	return s.withSession(sessionID, func(*domain.SelectionState) error {
		return nil
	})
}

// ChangeMode переключает режим бронирования с полным сбросом выбора
func (s *Service) ChangeMode(sessionID string, mode domain.BookingMode) (*View, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		state.ChangeMode(mode)
		return nil
	})
}

// Next переходит к следующему шагу
func (s *Service) Next(sessionID string) (*View, error) {
	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		state.Next()
		return nil
	})
}

// Back возвращается на предыдущий шаг
func (s *Service) Back(sessionID string) (*View, error) {
	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		state.Back()
		return nil
	})
}

// SetCanopyQuantity устанавливает количество для составного ключа канопи
func (s *Service) SetCanopyQuantity(sessionID string, ref domain.CanopyRef, qty int) (*View, error) {
	snapshot := s.catalog.Snapshot()

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		if _, ok := snapshot.CanopyByID(ref.CanopyID); !ok {
			return ErrCanopyNotFound
		}
		state.SetCanopyQuantity(ref, qty)
		return nil
	})
}

// SelectCanopy одиночный выбор канопи: заменяет весь выбор одной записью
// с количеством 1 и переходит к следующему шагу
// Если размер не указан, для канопи с размерами берется первый размер
func (s *Service) SelectCanopy(sessionID string, canopyID int64, sizeName *string) (*View, error) {
	snapshot := s.catalog.Snapshot()

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		canopy, ok := snapshot.CanopyByID(canopyID)
		if !ok {
			return ErrCanopyNotFound
		}

		var size *domain.CanopySize
		if sizeName != nil {
			found, ok := canopy.SizeByName(*sizeName)
			if !ok {
				return ErrSizeNotFound
			}
			size = &found
		}

		state.SelectSingleCanopy(canopy, size)
		return nil
	})
}

// SelectPackage выбирает пакет с автоподбором канопи и переходит дальше
func (s *Service) SelectPackage(sessionID string, packageID int64) (*View, error) {
	snapshot := s.catalog.Snapshot()

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		pkg, ok := snapshot.PackageByID(packageID)
		if !ok {
			return ErrPackageNotFound
		}
		state.SelectPackage(pkg, snapshot.Canopies)
		return nil
	})
}

// SelectColor выбирает цвет из палитры и переходит дальше
func (s *Service) SelectColor(sessionID string, colorName string) (*View, error) {
	snapshot := s.catalog.Snapshot()

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		color, ok := snapshot.ColorByName(colorName)
		if !ok {
			return ErrColorNotFound
		}
		state.SelectColor(color)
		return nil
	})
}

// SetAccessoryQuantity устанавливает количество аксессуара
func (s *Service) SetAccessoryQuantity(sessionID string, accessoryID int64, qty int) (*View, error) {
	snapshot := s.catalog.Snapshot()

	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		if _, ok := snapshot.AccessoryByID(accessoryID); !ok {
			return ErrAccessoryNotFound
		}
		state.SetAccessoryQuantity(accessoryID, qty)
		return nil
	})
}

// SetDetails обновляет данные клиента
func (s *Service) SetDetails(sessionID string, details domain.BookingDetails) (*View, error) {
	return s.withSession(sessionID, func(state *domain.SelectionState) error {
		state.SetDetails(details)
		return nil
	})
}

// State возвращает копию состояния сессии
// Используется финализацией брони для расчета и сохранения
func (s *Service) State(sessionID string) (*domain.SelectionState, error) {
	view, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return view.State, nil
}

// Reset сбрасывает состояние сессии к пустым значениям
// Вызывается после завершения брони
func (s *Service) Reset(sessionID string) error {
	defaultColor := s.catalog.Snapshot().DefaultColor()

	_, err := s.withSession(sessionID, func(state *domain.SelectionState) error {
		state.Reset(defaultColor)
		return nil
	})
	return err
}
