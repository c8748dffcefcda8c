package rabbitmq

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetReminderQueues возвращает очереди напоминаний об оплате квинзен.
func GetReminderQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "reminder.payment_due", RoutingKey: "payment_due"},
	}
}
