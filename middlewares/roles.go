package middlewares

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

func RolesMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := services.NewClaimsFromContext(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		for _, role := range roles {
			if claims.UserType == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "Unauthorized role",
		})
	}
}
