// Package secret реализует функции для безопасного хеширования и проверки
// ключей восстановления анонимных учётных записей.
//
// GetHash создает bcrypt-хеш ключа для безопасного хранения.
// CompareHash сравнивает сохранённый bcrypt-хеш с предъявленным ключом.
package secret

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash принимает ключ восстановления и возвращает его bcrypt-хэш.
//
// Используется для безопасного хранения ключей в базе данных.
func GetHash(recoveryKey string) (string, error) {
	const op = "secret.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(recoveryKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash сравнивает bcrypt-хэш с предъявленным ключом восстановления.
//
// Возвращает nil, если ключ соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalKey string) error {
	const op = "secret.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalKey)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
