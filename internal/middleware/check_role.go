package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/utilities"
)

// CheckRole will protect endpoint from user that is not a specific roles.
// It must run after RequireAuth.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if !slices.Contains(roles, user.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
			})
			return
		}
		ctx.Next()
	}
}
