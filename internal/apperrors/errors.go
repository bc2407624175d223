package apperrors

import "errors"

// Ошибки ядра. Хендлеры сопоставляют их с HTTP-статусами через errors.Is,
// сервисы и репозитории оборачивают через fmt.Errorf("%w").
var (
	ErrValidation         = errors.New("неверные данные запроса")
	ErrDuplicateAccount   = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrMissingCredentials = errors.New("требуется авторизация")
	ErrInvalidToken       = errors.New("недействительный токен")
	ErrNotFound           = errors.New("запись не найдена")
	ErrForbidden          = errors.New("доступ запрещен")
	ErrStorage            = errors.New("хранилище недоступно")
)
