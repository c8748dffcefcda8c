// Package models содержит структуру анонимного пользователя.
package models

import "time"

// User — анонимная учётная запись. Пользователь идентифицируется
// только UID; ключ восстановления хранится в виде bcrypt-хэша и
// показывается клиенту один раз при создании.
type User struct {
	UID             string    // Стабильный непрозрачный идентификатор
	RecoveryKeyHash string    // bcrypt-хэш ключа восстановления
	CreatedAt       time.Time // Момент создания записи
}

// DummyIdentity — запрос на открытие сессии. Пустой запрос создаёт
// новую анонимную учётную запись; запрос с UID и ключом восстановления
// возобновляет существующую.
type DummyIdentity struct {
	UserUID     string `json:"user_uid" validate:"omitempty,uuid"`                     // UID существующей записи
	RecoveryKey string `json:"recovery_key" validate:"required_with=UserUID,omitempty"` // Ключ восстановления
}

// Identity — результат открытия сессии. RecoveryKey заполнен только
// при создании новой учётной записи и больше нигде не воспроизводится.
type Identity struct {
	UserUID     string `json:"user_uid"`
	Token       string `json:"token"`
	RecoveryKey string `json:"recovery_key,omitempty"`
}
