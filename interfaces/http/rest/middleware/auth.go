package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"games-backend/pkg/auth"
	pkgerrors "games-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"go.uber.org/zap"
)

// Authenticate attaches the caller identity to the request. Under API Gateway
// the identity comes from the authorizer context; otherwise the bearer token
// is validated locally. Requests without an identity are rejected.
func Authenticate(validator *auth.JWTValidator, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := identify(r, validator)
			if err != nil {
				logger.Warn("Authentication failed",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Error(err),
				)
				errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(err.Error()))
				return
			}

			logger.Debug("Request authenticated",
				zap.String("user_id", user.UserID),
				zap.String("source", user.Source),
			)

			ctx := auth.SetUserInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identify(r *http.Request, validator *auth.JWTValidator) (*auth.UserContext, error) {
	if reqCtx, ok := core.GetAPIGatewayV2ContextFromContext(r.Context()); ok && reqCtx.Authorizer != nil {
		if userID := authorizerIdentity(reqCtx.Authorizer.Lambda, reqCtx.Authorizer.JWT); userID != "" {
			return &auth.UserContext{UserID: userID, Source: "authorizer"}, nil
		}
	}

	if validator == nil {
		return nil, auth.ErrMissingToken
	}

	token := extractToken(r)
	if token == "" {
		return nil, auth.ErrMissingToken
	}

	claims, err := validator.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &auth.UserContext{UserID: claims.UserID(), Email: claims.Email, Source: "jwt"}, nil
}

// authorizerIdentity reads the principal from a Lambda authorizer context
// or the subject of a JWT authorizer
func authorizerIdentity(lambda map[string]interface{}, jwt *events.APIGatewayV2HTTPRequestContextAuthorizerJWTDescription) string {
	for _, key := range []string{"principalId", "userId"} {
		if v, ok := lambda[key]; ok {
			if s := fmt.Sprint(v); s != "" && s != "<nil>" {
				return s
			}
		}
	}
	if jwt != nil {
		return jwt.Claims["sub"]
	}
	return ""
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
