package services

import (
	"fmt"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type Claims struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

// NewSignedToken issues the session token carried in the httpOnly cookie
func NewSignedToken(user *models.User) (string, error) {
	claims := &Claims{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
}

func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(settingsData.JWT_SECRET_KEY), nil
		},
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, fmt.Errorf("no claims in context")
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil, fmt.Errorf("bad claims in context")
	}
	return claims, nil
}
