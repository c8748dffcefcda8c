package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvidal/gestor-pautas/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func samplePautas() []*models.Pauta {
	return []*models.Pauta{
		{ID: 1, Title: "Matéria externa", Station: "Record", Date: date(2025, time.July, 10), Value: 100, Status: models.StatusPendente, Solicitante: "Carlos"},
		{ID: 2, Title: "Estúdio", Station: "Band", Date: date(2025, time.July, 20), Value: 50, Status: models.StatusPago, Solicitante: "Ana Paula"},
	}
}

func TestBuildReport_EndToEnd(t *testing.T) {
	rep := BuildReport(samplePautas(), models.Filter{})

	assert.Equal(t, 150.0, rep.Total)
	assert.Equal(t, map[string]float64{"Record": 100, "Band": 50}, rep.ByStation)

	require.Len(t, rep.ByPeriod, 2)
	// Сначала более поздний период.
	assert.Equal(t, "2025/07 - 2ª Quinzena", rep.ByPeriod[0].Key)
	assert.Equal(t, 50.0, rep.ByPeriod[0].Total)
	assert.Equal(t, "2025-07-31", rep.ByPeriod[0].ClosingDate)
	assert.Equal(t, "2025-08-20", rep.ByPeriod[0].ProjectedPaymentDate)

	assert.Equal(t, "2025/07 - 1ª Quinzena", rep.ByPeriod[1].Key)
	assert.Equal(t, 100.0, rep.ByPeriod[1].Total)
	assert.Equal(t, "2025-07-15", rep.ByPeriod[1].ClosingDate)
	assert.Equal(t, "2025-08-04", rep.ByPeriod[1].ProjectedPaymentDate)
}

func TestBuildReport_StationFilter(t *testing.T) {
	rep := BuildReport(samplePautas(), models.Filter{Station: "Record"})

	assert.Equal(t, 100.0, rep.Total)
	assert.Equal(t, map[string]float64{"Record": 100}, rep.ByStation)
	require.Len(t, rep.ByPeriod, 1)
	assert.Equal(t, "2025/07 - 1ª Quinzena", rep.ByPeriod[0].Key)
}

func TestBuildReport_Filters(t *testing.T) {
	start := date(2025, time.July, 15)
	end := date(2025, time.July, 20)

	tests := []struct {
		name      string
		filter    models.Filter
		wantTotal float64
	}{
		{name: "без фильтра", filter: models.Filter{}, wantTotal: 150},
		{name: "начало периода отсекает раннюю запись", filter: models.Filter{StartDate: &start}, wantTotal: 50},
		{name: "конец периода включителен", filter: models.Filter{EndDate: &end}, wantTotal: 150},
		{name: "статус точным совпадением", filter: models.Filter{Status: models.StatusPago}, wantTotal: 50},
		{name: "заказчик подстрокой без регистра", filter: models.Filter{Solicitante: "ana"}, wantTotal: 50},
		{name: "заказчик без совпадений", filter: models.Filter{Solicitante: "joão"}, wantTotal: 0},
		{name: "комбинация критериев по И", filter: models.Filter{Station: "Band", Status: models.StatusPendente}, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := BuildReport(samplePautas(), tt.filter)
			assert.Equal(t, tt.wantTotal, rep.Total)
		})
	}
}

// Запись без заказчика не проходит непустой критерий по заказчику.
func TestBuildReport_EmptySolicitanteFailsCriterion(t *testing.T) {
	pautas := []*models.Pauta{
		{ID: 1, Title: "Sem solicitante", Station: "CNN", Date: date(2025, time.July, 5), Value: 30},
	}
	rep := BuildReport(pautas, models.Filter{Solicitante: "carlos"})
	assert.Zero(t, rep.Total)
	assert.Empty(t, rep.ByStation)
}

// Запись без даты исключается из отчёта целиком.
func TestBuildReport_MissingDateExcluded(t *testing.T) {
	pautas := append(samplePautas(), &models.Pauta{ID: 3, Title: "Sem data", Station: "CNN", Value: 999})
	rep := BuildReport(pautas, models.Filter{})

	assert.Equal(t, 150.0, rep.Total)
	assert.NotContains(t, rep.ByStation, "CNN")
	assert.Len(t, rep.ByPeriod, 2)
}

// Нулевая стоимость попадает в общий итог, но не в частные свёртки.
func TestBuildReport_ZeroValueAsymmetry(t *testing.T) {
	pautas := append(samplePautas(), &models.Pauta{
		ID: 3, Title: "Valor zerado", Station: "CNN", Date: date(2025, time.June, 1), Value: 0,
	})
	rep := BuildReport(pautas, models.Filter{})

	assert.Equal(t, 150.0, rep.Total)
	assert.NotContains(t, rep.ByStation, "CNN")
	for _, entry := range rep.ByPeriod {
		assert.NotEqual(t, "2025/06 - 1ª Quinzena", entry.Key)
	}
}

// Запись без телеканала входит в общий итог, но не в свёртку по телеканалам.
func TestBuildReport_StationlessRecord(t *testing.T) {
	pautas := append(samplePautas(), &models.Pauta{
		ID: 3, Title: "Freela avulso", Date: date(2025, time.July, 2), Value: 25,
	})
	rep := BuildReport(pautas, models.Filter{})

	assert.Equal(t, 175.0, rep.Total)
	var stationSum float64
	for _, v := range rep.ByStation {
		stationSum += v
	}
	assert.Less(t, stationSum, rep.Total)
}

func TestBuildReport_Idempotent(t *testing.T) {
	pautas := samplePautas()
	f := models.Filter{Station: "Record"}
	assert.Equal(t, BuildReport(pautas, f), BuildReport(pautas, f))
}

func TestBuildReport_EmptyInput(t *testing.T) {
	rep := BuildReport(nil, models.Filter{})
	assert.Zero(t, rep.Total)
	assert.Empty(t, rep.ByStation)
	assert.Empty(t, rep.ByPeriod)
}

// Периоды из разных месяцев и половин выстраиваются по убыванию ключа.
func TestBuildReport_PeriodOrdering(t *testing.T) {
	pautas := []*models.Pauta{
		{ID: 1, Date: date(2025, time.June, 20), Value: 1, Station: "Record"},
		{ID: 2, Date: date(2025, time.July, 1), Value: 1, Station: "Record"},
		{ID: 3, Date: date(2025, time.July, 16), Value: 1, Station: "Record"},
		{ID: 4, Date: date(2024, time.December, 31), Value: 1, Station: "Record"},
	}
	rep := BuildReport(pautas, models.Filter{})

	keys := make([]string, 0, len(rep.ByPeriod))
	for _, e := range rep.ByPeriod {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{
		"2025/07 - 2ª Quinzena",
		"2025/07 - 1ª Quinzena",
		"2025/06 - 2ª Quinzena",
		"2024/12 - 2ª Quinzena",
	}, keys)
}

// После удаления записи из снимка новый отчёт её не видит ни в одной свёртке.
func TestBuildReport_DeletionScenario(t *testing.T) {
	pautas := samplePautas()
	before := BuildReport(pautas, models.Filter{})
	require.Equal(t, 150.0, before.Total)

	after := BuildReport(pautas[1:], models.Filter{})
	assert.Equal(t, 50.0, after.Total)
	assert.NotContains(t, after.ByStation, "Record")
	require.Len(t, after.ByPeriod, 1)
	assert.Equal(t, "2025/07 - 2ª Quinzena", after.ByPeriod[0].Key)
}
