// Package models содержит доменные структуры рабочих записей ("паут"),
// а также вспомогательные типы для приёма данных из внешних источников (например, JSON-запросы).
package models

import (
	"math"
	"strconv"
	"time"
)

// Статусы оплаты пауты. Значения совпадают с тем, что видит пользователь.
const (
	// StatusPendente — оплата ещё не поступила.
	StatusPendente = "Pendente"
	// StatusPago — паута оплачена.
	StatusPago = "Pago"
)

// KnownStations — закрытый список известных телеканалов-заказчиков.
// Станция вне списка сохраняется как есть (вариант "Outra").
var KnownStations = []string{"Record", "Band", "CNN", "My Hood", "Sbt", "Outra"}

// DateLayout — каноничный формат календарной даты без времени.
const DateLayout = "2006-01-02"

// Pauta представляет собой основную модель рабочей записи,
// используемую в бизнес-логике и хранилище.
// Date хранит только календарную дату, ProjectedPaymentDate всегда
// пересчитывается из Date при каждом сохранении и отдельно не редактируется.
type Pauta struct {
	ID                   int       `json:"id"`                     // Идентификатор, назначается хранилищем
	UserUID              string    `json:"user_uid"`               // UID владельца записи
	Title                string    `json:"title"`                  // Название пауты
	Station              string    `json:"station"`                // Телеканал-заказчик
	Solicitante          string    `json:"solicitante"`            // Имя заказчика (опционально)
	Date                 time.Time `json:"date"`                   // Дата выполнения работы
	Value                float64   `json:"value"`                  // Стоимость, всегда конечное число >= 0
	Status               string    `json:"status"`                 // Pendente | Pago
	ProjectedPaymentDate time.Time `json:"projected_payment_date"` // Прогноз даты оплаты, производное поле
}

// DummyPauta используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Pauta.
// Дата и стоимость приходят строками, чтобы их можно было валидировать
// и приводить к типам вручную.
type DummyPauta struct {
	Title       string `json:"title" validate:"required"`                          // Название пауты
	Station     string `json:"station" validate:"omitempty"`                       // Телеканал
	Solicitante string `json:"solicitante" validate:"omitempty"`                   // Заказчик
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`       // Дата работы в формате 2006-01-02
	Value       string `json:"value" validate:"omitempty"`                         // Стоимость, строка с числом
	Status      string `json:"status" validate:"omitempty,oneof=Pendente Pago"`    // Статус оплаты
}

// CoerceValue приводит строковое значение стоимости к безопасному числу.
// Нечисловой ввод и отрицательные значения дают 0, ошибок не бывает.
func CoerceValue(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
