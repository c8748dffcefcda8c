// Package services содержит сервис построения отчётов по паутам.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
	"github.com/matheusvidal/gestor-pautas/internal/report"
	pautasvc "github.com/matheusvidal/gestor-pautas/internal/services/pauta"
)

// PautaRepository определяет источник снимка паут для отчётов.
type PautaRepository interface {
	ListPautas(ctx context.Context, userUID string) ([]*models.Pauta, error)
}

// Cache описывает методы кеша отчётов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// ReportService строит отчёты поверх полного снимка набора паут.
// Готовые отчёты кешируются под версией снимка: любая запись повышает
// версию, поэтому устаревший отчёт никогда не будет отдан.
type ReportService struct {
	repo  PautaRepository
	cache Cache
	log   *slog.Logger
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(repo PautaRepository, cache Cache, log *slog.Logger) *ReportService {
	return &ReportService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// cacheKey собирает ключ отчёта из UID, версии снимка и отпечатка фильтра.
func cacheKey(userUID string, version int64, req models.DummyFilter) string {
	return fmt.Sprintf("report:%s:%d:%s|%s|%s|%s|%s",
		userUID, version,
		req.StartDate, req.EndDate, req.Station, req.Status, req.Solicitante)
}

// Build строит отчёт по набору паут пользователя с учётом фильтра.
// Кеш работает как ускорение, а не как источник истины: любая ошибка
// кеша приводит к честному пересчёту по снимку из хранилища.
func (s *ReportService) Build(ctx context.Context, userUID string, req models.DummyFilter) (*models.Report, error) {
	var version int64
	if _, err := s.cache.Get(pautasvc.SnapshotVersionKey(userUID), &version); err != nil {
		s.log.Warn("failed to read snapshot version", sl.Err(err))
	}

	key := cacheKey(userUID, version, req)

	var cached models.Report
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read cached report", sl.Err(err))
	}
	if found && err == nil {
		s.log.Debug("report served from cache", slog.String("key", key))
		return &cached, nil
	}

	snapshot, err := s.repo.ListPautas(ctx, userUID)
	if err != nil {
		return nil, err
	}

	rep := report.BuildReport(snapshot, req.ToFilter())

	if err := s.cache.Set(key, rep, time.Hour); err != nil {
		s.log.Warn("failed to cache report", sl.Err(err))
	}
	return rep, nil
}
