package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tombdereus/gimcana-api/internal/api/handler/v1/response"
	"github.com/tombdereus/gimcana-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyUserID holds the authenticated user's id in the gin context.
	ContextKeyUserID = "userID"
	// ContextKeyUserRole holds the authenticated user's role in the gin context.
	ContextKeyUserRole = "userRole"

	RoleAdmin = "admin"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing bearer token")))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("invalid or expired token")))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin must run after VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextKeyUserRole) != RoleAdmin {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin role required")))
			return
		}

		ctx.Next()
	}
}
