// Package models содержит структуры готового отчёта по паутам.
package models

// PeriodEntry — итог по одной квинзене (половине месяца).
// Ключ имеет вид "2025/07 - 1ª Quinzena" и корректно сортируется как строка.
type PeriodEntry struct {
	Key                  string  `json:"key"`                    // Ключ периода
	Total                float64 `json:"total"`                  // Сумма паут периода
	ClosingDate          string  `json:"closing_date"`           // Дата закрытия периода, 2006-01-02
	ProjectedPaymentDate string  `json:"projected_payment_date"` // Прогноз оплаты периода, 2006-01-02
}

// Report — полностью производный отчёт по отфильтрованному набору паут.
// ByPeriod упорядочен по убыванию ключа (сначала свежие периоды).
type Report struct {
	Total     float64            `json:"total"`      // Общая сумма
	ByStation map[string]float64 `json:"by_station"` // Сумма по телеканалам
	ByPeriod  []PeriodEntry      `json:"by_period"`  // Сумма по квинзенам
}
