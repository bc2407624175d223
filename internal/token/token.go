package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"socialfeed/internal/apperrors"
)

// Claims - стандартные утверждения плюс идентификатор пользователя
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Codec выпускает и проверяет подписанные токены сессии.
// Секрет общий на процесс; смена секрета делает все выданные
// токены недействительными.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify возвращает идентификатор пользователя из токена. Любой дефект -
// неверная подпись, битый формат, истекший срок - даёт один и тот же
// ErrInvalidToken, чтобы по ответу нельзя было определить причину.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}
