package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"demcare-service/internal/domain/repositories"
	"demcare-service/internal/infrastructure"
)

const userIDKey = "userID"

type Auth struct {
	jwtService *infrastructure.JWTService
	userRepo   repositories.UserRepository
	cache      infrastructure.TokenCache
}

func NewAuth(jwtService *infrastructure.JWTService, userRepo repositories.UserRepository, cache infrastructure.TokenCache) *Auth {
	return &Auth{
		jwtService: jwtService,
		userRepo:   userRepo,
		cache:      cache,
	}
}

// Require validates the bearer token: signature first, then membership in the
// owning user's stored token list. Removing a token from the list revokes it
// immediately. A cache hit skips the database lookup; cache entries are
// purged whenever their token is evicted from the list, so the hit carries
// the same authority.
func (a *Auth) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				return unauthenticated(c)
			}

			subject, err := a.jwtService.ParseToken(token)
			if err != nil {
				return unauthenticated(c)
			}

			id, err := uuid.Parse(subject)
			if err != nil {
				return unauthenticated(c)
			}

			ctx := c.Request().Context()

			var cached string
			if a.cache != nil {
				cached, err = a.cache.GetToken(ctx, token)
				if err != nil {
					log.Println("Token cache lookup failed:", err)
				}
			}
			if cached != subject {
				user, err := a.userRepo.FindById(ctx, id)
				if err != nil {
					return unauthenticated(c)
				}
				if user == nil || !user.HasToken(token) {
					return unauthenticated(c)
				}
				if a.cache != nil {
					if err := a.cache.SetToken(ctx, token, subject, 24*time.Hour); err != nil {
						log.Println("Failed to cache session token:", err)
					}
				}
			}

			c.Set(userIDKey, id)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id set by Require.
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(userIDKey).(uuid.UUID)
	return id
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"status":  "Failed",
		"message": "Please authenticate",
	})
}
