// Package services содержит планировщик напоминаний об оплате квинзен.
package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/streadway/amqp"

	"github.com/matheusvidal/gestor-pautas/internal/lib/quinzena"
	"github.com/matheusvidal/gestor-pautas/internal/lib/rabbitmq"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// PautaRepository отдаёт пауты, прогнозная дата оплаты которых наступает сегодня.
type PautaRepository interface {
	FindPautasDueToday(ctx context.Context) ([]*models.Pauta, error)
}

// SchedulerService периодически ищет неоплаченные пауты с наступившей
// датой оплаты и публикует по одному напоминанию на квинзену пользователя.
type SchedulerService struct {
	repo PautaRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo PautaRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindPaymentsDueToday запускает цикл поиска наступивших оплат.
// Первый проход выполняется сразу, дальше раз в 12 часов.
func (s *SchedulerService) FindPaymentsDueToday(ctx context.Context, channel *amqp.Channel) {
	s.runFindPaymentsDueToday(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.runFindPaymentsDueToday(ctx, channel)
	}
}

func (s *SchedulerService) runFindPaymentsDueToday(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find pautas with payment due today")
	pautas, err := s.repo.FindPautasDueToday(ctx)
	if err != nil {
		s.log.Error("failed to find pautas", sl.Err(err))
		return
	}
	if len(pautas) == 0 {
		s.log.Info("no payments due today")
		return
	}
	s.log.Info("found pautas with payment due today", "count", len(pautas))

	for _, reminder := range GroupReminders(pautas) {
		err = rabbitmq.PublishMessage(channel, "reminders", "payment_due", reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}

// GroupReminders сворачивает пауты в напоминания: по одному на пару
// (пользователь, квинзена), с суммой и количеством записей периода.
func GroupReminders(pautas []*models.Pauta) []models.PaymentReminder {
	type groupKey struct {
		userUID   string
		periodKey string
	}
	groups := make(map[groupKey]*models.PaymentReminder)

	for _, p := range pautas {
		key := groupKey{userUID: p.UserUID, periodKey: quinzena.PeriodKey(p.Date)}
		reminder, ok := groups[key]
		if !ok {
			reminder = &models.PaymentReminder{
				UserUID:              p.UserUID,
				PeriodKey:            key.periodKey,
				ProjectedPaymentDate: p.ProjectedPaymentDate.Format(models.DateLayout),
			}
			groups[key] = reminder
		}
		reminder.Total += p.Value
		reminder.Count++
	}

	result := make([]models.PaymentReminder, 0, len(groups))
	for _, reminder := range groups {
		result = append(result, *reminder)
	}
	// Детерминированный порядок публикации.
	sort.Slice(result, func(i, j int) bool {
		if result[i].UserUID != result[j].UserUID {
			return result[i].UserUID < result[j].UserUID
		}
		return result[i].PeriodKey < result[j].PeriodKey
	})
	return result
}
