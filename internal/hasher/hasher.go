package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash возвращает bcrypt-хеш пароля. Соль генерируется на каждый вызов
// и хранится внутри самого хеша, отдельно её хранить не нужно.
func Hash(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	return string(hashedPassword), nil
}

// Verify сравнивает пароль с хешем. При несовпадении возвращает false,
// никогда не ошибку.
func Verify(password, passwordHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	return err == nil
}
