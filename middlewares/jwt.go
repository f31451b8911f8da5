package middlewares

import (
	"net/http"
	"strings"

	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// JWTMiddleware reads the session token from the httpOnly cookie, with
// an Authorization header fallback for API clients
func JWTMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie("token")
		if err != nil || token == "" {
			authorization := ctx.GetHeader("Authorization")
			token = strings.TrimPrefix(authorization, "Bearer ")
		}
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		claims, err := services.VerifyToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}
