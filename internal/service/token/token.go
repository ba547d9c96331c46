package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

type Service struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
}

func SignAccessToken(user models.AppUser, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.AppUserID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(accessTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func SignRefreshToken(user models.AppUser, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.AppUserID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(refreshTTL).Unix(),
		"typ":   "refresh",
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (s *Service) SaveRefreshToken(token string, userID int) error {
	record := models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(refreshTTL).Unix(),
		Revoked:   false,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Service) ValidateRefresh(rawToken string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.RefreshSecret, nil
	})
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("cannot parse claims")
	}
	if typ, ok := claims["typ"]; !ok || typ != "refresh" {
		return nil, errors.New("not a refresh token")
	}

	var stored models.RefreshToken
	if err := s.DB.Where("token = ?", rawToken).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("refresh token not found")
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if stored.Revoked {
		return nil, errors.New("refresh token revoked")
	}
	if time.Now().Unix() > stored.ExpiresAt {
		return nil, errors.New("refresh token expired")
	}

	return claims, nil
}

// RotateToken exchanges a valid refresh token for a new access/refresh pair
// and revokes the old one.
func (s *Service) RotateToken(rawToken string) (string, string, error) {
	claims, err := s.ValidateRefresh(rawToken)
	if err != nil {
		return "", "", err
	}

	user := models.AppUser{
		AppUserID: int(claims["sub"].(float64)),
		Email:     claims["email"].(string),
		Role:      claims["role"].(string),
	}

	newAccess, err := SignAccessToken(user, s.JWTSecret)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := SignRefreshToken(user, s.RefreshSecret)
	if err != nil {
		return "", "", err
	}

	if err := s.DB.Model(&models.RefreshToken{}).
		Where("token = ?", rawToken).Update("revoked", true).Error; err != nil {
		return "", "", fmt.Errorf("db error: %w", err)
	}
	if err := s.SaveRefreshToken(newRefresh, user.AppUserID); err != nil {
		return "", "", err
	}

	return newAccess, newRefresh, nil
}

// RequireRole validates the bearer access token and gates the request on the
// caller's role.
func (s *Service) RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token missing")
			}

			t, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
				}
				return s.JWTSecret, nil
			})
			if err != nil || !t.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			claims, ok := t.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			role, _ := claims["role"].(string)
			if len(allowed) > 0 && !allowed[role] {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set("userID", int(claims["sub"].(float64)))
			c.Set("email", claims["email"])
			c.Set("role", role)
			return next(c)
		}
	}
}
