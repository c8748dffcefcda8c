// Package quinzena реализует календарную арифметику полумесячных
// расчётных периодов ("квинзен") и прогноз даты оплаты.
//
// Правило фиксированное: работа с датой по 15-е число включительно
// относится к первой квинзене с закрытием 15-го числа, с 16-го числа —
// ко второй квинзене с закрытием в последний день месяца. Оплата
// прогнозируется через 20 календарных дней после закрытия периода.
// Все функции чистые и определены для любой корректной даты.
package quinzena

import (
	"fmt"
	"time"

	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// ClosingDate возвращает дату закрытия квинзены, содержащей d.
// Последний день месяца вычисляется как нулевой день следующего месяца,
// поэтому длина месяца и високосные годы учитываются автоматически.
func ClosingDate(d time.Time) time.Time {
	if d.Day() <= 15 {
		return time.Date(d.Year(), d.Month(), 15, 0, 0, 0, 0, d.Location())
	}
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location())
}

// ProjectPaymentDate возвращает прогноз даты оплаты для работы с датой d:
// дата закрытия квинзены плюс ровно 20 календарных дней. Переход через
// границы месяца и года выполняется обычной календарной арифметикой,
// без привязки к рабочим дням.
func ProjectPaymentDate(d time.Time) time.Time {
	return ClosingDate(d).AddDate(0, 0, 20)
}

// ProjectPaymentDateString — строковая форма ProjectPaymentDate для границы
// с внешними источниками. Пустой вход даёт пустой выход, вызывающая сторона
// сама отвечает за отсутствие даты. Некорректная строка тоже даёт пустой
// выход: такая запись исключается из всех периодных представлений.
func ProjectPaymentDateString(s string) string {
	if s == "" {
		return ""
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return ""
	}
	return ProjectPaymentDate(d).Format(models.DateLayout)
}

// PeriodKey возвращает ключ квинзены для даты d в виде
// "2025/07 - 1ª Quinzena". Нулевое дополнение месяца делает
// лексикографический порядок ключей хронологическим.
func PeriodKey(d time.Time) string {
	label := "1ª Quinzena"
	if d.Day() > 15 {
		label = "2ª Quinzena"
	}
	return fmt.Sprintf("%04d/%02d - %s", d.Year(), int(d.Month()), label)
}
