package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialfeed/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAppError сопоставляет типизированные ошибки ядра с HTTP-статусами.
// Внутренние детали (ошибки хранилища и т.п.) наружу не уходят.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		WriteError(w, "Неверные данные", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrDuplicateAccount):
		WriteError(w, "Email уже существует", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		WriteError(w, "Неверный email или пароль", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrMissingCredentials):
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrInvalidToken):
		WriteError(w, "Недействительный токен", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	default:
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
