// Package models содержит структуры фильтра, по которому строится отчёт.
// Фильтр живёт только в рамках запроса и никогда не сохраняется.
package models

import "time"

// Filter представляет параметры отбора паут, которые передаются в движок отчётов.
// nil-дата означает отсутствие ограничения по этой границе.
type Filter struct {
	StartDate   *time.Time // Начало периода включительно (полночь)
	EndDate     *time.Time // Конец периода включительно (до конца дня)
	Station     string     // Точное совпадение телеканала ("" — без фильтра)
	Status      string     // Точное совпадение статуса ("" — без фильтра)
	Solicitante string     // Подстрока имени заказчика без учёта регистра
}

// DummyFilter используется для приёма параметров фильтра из JSON-запроса
// до их валидации и преобразования в Filter. Даты приходят строками.
type DummyFilter struct {
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"` // Начало периода
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`   // Конец периода
	Station     string `json:"station" validate:"omitempty"`                        // Телеканал
	Status      string `json:"status" validate:"omitempty,oneof=Pendente Pago"`     // Статус
	Solicitante string `json:"solicitante" validate:"omitempty"`                    // Заказчик
}

// ToFilter преобразует провалидированный DummyFilter в Filter.
// Строки дат уже проверены валидатором, поэтому ошибка парсинга невозможна.
func (d DummyFilter) ToFilter() Filter {
	f := Filter{
		Station:     d.Station,
		Status:      d.Status,
		Solicitante: d.Solicitante,
	}
	if d.StartDate != "" {
		t, _ := time.Parse(DateLayout, d.StartDate)
		f.StartDate = &t
	}
	if d.EndDate != "" {
		t, _ := time.Parse(DateLayout, d.EndDate)
		f.EndDate = &t
	}
	return f
}
