// Package models содержит сообщение-напоминание об оплате квинзены.
package models

// PaymentReminder — одно напоминание: квинзена пользователя, по которой
// сегодня наступает прогнозная дата оплаты. Публикуется планировщиком
// в RabbitMQ и потребляется сервисом отправки писем.
type PaymentReminder struct {
	UserUID              string  `json:"user_uid"`               // Владелец набора паут
	PeriodKey            string  `json:"period_key"`             // Ключ квинзены
	Total                float64 `json:"total"`                  // Сумма неоплаченных паут периода
	Count                int     `json:"count"`                  // Количество паут периода
	ProjectedPaymentDate string  `json:"projected_payment_date"` // Прогнозная дата оплаты, 2006-01-02
}
