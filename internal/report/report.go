// Package report реализует движок фильтрации и агрегирования паут.
//
// BuildReport — чистая функция над снимком записей: применяет фильтр,
// сортирует и считает три независимые свёртки (общая сумма, сумма по
// телеканалам, сумма по квинзенам с прогнозом оплаты периода). Движок
// ничего не знает о хранилище и не выполняет I/O, любые некорректные
// данные уже приведены к безопасным значениям на границе.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/matheusvidal/gestor-pautas/internal/lib/quinzena"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// BuildReport строит отчёт по снимку паут с учётом фильтра.
// Каждый вызов пересчитывает отчёт заново: снимок авторитетен целиком,
// никакого внутреннего состояния между вызовами нет.
func BuildReport(pautas []*models.Pauta, f models.Filter) *models.Report {
	filtered := applyFilter(pautas, f)

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	rep := &models.Report{
		ByStation: make(map[string]float64),
	}

	type periodAcc struct {
		total   float64
		closing time.Time
	}
	byPeriod := make(map[string]*periodAcc)

	for _, p := range filtered {
		rep.Total += p.Value

		// Телеканалы и квинзены учитывают только записи с ненулевой
		// стоимостью: запись с нулём остаётся в общем итоге, но не
		// порождает ключей в частных свёртках.
		if p.Station != "" && p.Value != 0 {
			rep.ByStation[p.Station] += p.Value
		}
		if !p.Date.IsZero() && p.Value != 0 {
			key := quinzena.PeriodKey(p.Date)
			acc, ok := byPeriod[key]
			if !ok {
				acc = &periodAcc{closing: quinzena.ClosingDate(p.Date)}
				byPeriod[key] = acc
			}
			acc.total += p.Value
		}
	}

	keys := make([]string, 0, len(byPeriod))
	for key := range byPeriod {
		keys = append(keys, key)
	}
	// Убывание ключа хронологично: месяц дополнен нулём, а внутри месяца
	// "2ª Quinzena" сравнивается строкой старше "1ª Quinzena".
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	rep.ByPeriod = make([]models.PeriodEntry, 0, len(keys))
	for _, key := range keys {
		acc := byPeriod[key]
		rep.ByPeriod = append(rep.ByPeriod, models.PeriodEntry{
			Key:                  key,
			Total:                acc.total,
			ClosingDate:          acc.closing.Format(models.DateLayout),
			ProjectedPaymentDate: quinzena.ProjectPaymentDate(acc.closing).Format(models.DateLayout),
		})
	}

	return rep
}

// applyFilter отбирает пауты, удовлетворяющие всем активным критериям.
// Незаданный критерий считается выполненным. Запись без даты исключается
// всегда: для периодных представлений она бессмысленна.
func applyFilter(pautas []*models.Pauta, f models.Filter) []*models.Pauta {
	result := make([]*models.Pauta, 0, len(pautas))
	for _, p := range pautas {
		if p.Date.IsZero() {
			continue
		}
		if f.StartDate != nil && p.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil {
			endOfDay := f.EndDate.AddDate(0, 0, 1).Add(-time.Second)
			if p.Date.After(endOfDay) {
				continue
			}
		}
		if f.Station != "" && p.Station != f.Station {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Solicitante != "" &&
			!strings.Contains(strings.ToLower(p.Solicitante), strings.ToLower(f.Solicitante)) {
			continue
		}
		result = append(result, p)
	}
	return result
}
