// Package services содержит бизнес-логику для управления паутами.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/matheusvidal/gestor-pautas/internal/lib/quinzena"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// PautaRepository определяет методы для работы с паутами в хранилище.
type PautaRepository interface {
	// CreatePauta добавляет новую пауту и возвращает её ID.
	CreatePauta(ctx context.Context, p models.Pauta) (int, error)
	// UpdatePauta заменяет пауту по ID и возвращает количество изменённых записей.
	UpdatePauta(ctx context.Context, p models.Pauta, id int, userUID string) (int, error)
	// RemovePauta удаляет пауту по ID и возвращает количество удалённых записей.
	RemovePauta(ctx context.Context, id int, userUID string) (int, error)
	// ReadPauta возвращает пауту по ID.
	ReadPauta(ctx context.Context, id int, userUID string) (*models.Pauta, error)
	// ListPautas возвращает полный снимок набора паут пользователя.
	ListPautas(ctx context.Context, userUID string) ([]*models.Pauta, error)
}

// Cache описывает методы для версионирования снимков.
type Cache interface {
	// Incr атомарно увеличивает счётчик по ключу.
	Incr(key string) (int64, error)
}

// Publisher рассылает свежий снимок набора подписчикам.
type Publisher interface {
	Publish(ctx context.Context, userUID string) error
}

// PautaService реализует бизнес-логику работы с паутами.
// Любая успешная запись повышает версию снимка пользователя
// (обесценивая закешированные отчёты) и публикует свежий снимок.
type PautaService struct {
	repo  PautaRepository
	cache Cache
	feed  Publisher
	log   *slog.Logger
}

// NewPautaService создает новый экземпляр PautaService.
func NewPautaService(repo PautaRepository, cache Cache, feed Publisher, log *slog.Logger) *PautaService {
	return &PautaService{
		repo:  repo,
		cache: cache,
		feed:  feed,
		log:   log,
	}
}

// SnapshotVersionKey возвращает ключ счётчика версии снимка пользователя.
func SnapshotVersionKey(userUID string) string {
	return fmt.Sprintf("pautas:ver:%s", userUID)
}

// toPauta приводит провалидированный DummyPauta к доменной записи.
// Здесь сосредоточена вся коэрция границы: стоимость из строки
// превращается в безопасное число, статус получает значение по
// умолчанию, а прогноз оплаты всегда пересчитывается из даты работы —
// ручное значение этого поля не принимается.
func toPauta(userUID string, req models.DummyPauta) (models.Pauta, error) {
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return models.Pauta{}, fmt.Errorf("invalid date: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPendente
	}

	return models.Pauta{
		UserUID:              userUID,
		Title:                req.Title,
		Station:              req.Station,
		Solicitante:          req.Solicitante,
		Date:                 date,
		Value:                models.CoerceValue(req.Value),
		Status:               status,
		ProjectedPaymentDate: quinzena.ProjectPaymentDate(date),
	}, nil
}

// Create создает новую пауту для пользователя и возвращает её ID.
func (s *PautaService) Create(ctx context.Context, userUID string, req models.DummyPauta) (int, error) {
	p, err := toPauta(userUID, req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreatePauta(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new pauta", slog.Int("id", id))

	s.afterWrite(ctx, userUID)
	return id, nil
}

// Update полностью заменяет пауту по ID и возвращает количество изменённых записей.
func (s *PautaService) Update(ctx context.Context, userUID string, id int, req models.DummyPauta) (int, error) {
	p, err := toPauta(userUID, req)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdatePauta(ctx, p, id, userUID)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated pauta in storage", slog.Int("id", id))

	if count > 0 {
		s.afterWrite(ctx, userUID)
	}
	return count, nil
}

// Remove удаляет пауту по ID и возвращает количество удалённых записей.
// Подтверждение удаления — забота клиента: сюда запрос приходит уже
// подтверждённым.
func (s *PautaService) Remove(ctx context.Context, userUID string, id int) (int, error) {
	count, err := s.repo.RemovePauta(ctx, id, userUID)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.afterWrite(ctx, userUID)
	}
	return count, nil
}

// Read возвращает пауту по ID.
func (s *PautaService) Read(ctx context.Context, userUID string, id int) (*models.Pauta, error) {
	return s.repo.ReadPauta(ctx, id, userUID)
}

// List возвращает полный снимок набора паут пользователя.
func (s *PautaService) List(ctx context.Context, userUID string) ([]*models.Pauta, error) {
	return s.repo.ListPautas(ctx, userUID)
}

// afterWrite повышает версию снимка и рассылает его подписчикам.
// Сбои здесь не отменяют уже выполненную запись: источником истины
// остаётся хранилище, подписка доставит состояние при следующей публикации.
func (s *PautaService) afterWrite(ctx context.Context, userUID string) {
	if _, err := s.cache.Incr(SnapshotVersionKey(userUID)); err != nil {
		s.log.Warn("failed to bump snapshot version", slog.String("user_uid", userUID), sl.Err(err))
	}
	if err := s.feed.Publish(ctx, userUID); err != nil {
		s.log.Warn("failed to publish snapshot", slog.String("user_uid", userUID), sl.Err(err))
	}
}
