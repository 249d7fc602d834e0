package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirehub/jobboard/handler"
	"github.com/hirehub/jobboard/pkg/binder"
	"github.com/hirehub/jobboard/pkg/validator"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewRouter mounts the auth routes. Login, register, and refresh are
// public; logout, profile, and account require a resolved identity.
func NewRouter(svc *Service, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	errHandler := handler.NewErrorHandler[handler.Context](log)

	r.Post("/login", handler.Wrap(
		func(ctx handler.Context, req loginRequest) handler.Response {
			session, err := svc.Login(ctx, ctx.ResponseWriter(), req.Username, req.Password)
			if err != nil {
				return handler.JSONError(mapAuthError(err))
			}
			return handler.JSON(session,
				handler.WithStatus(http.StatusCreated),
				handler.WithMessage("User Login"))
		},
		handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, loginRequest](errHandler),
	))

	r.Post("/register", handler.Wrap(
		func(ctx handler.Context, req RegisterInput) handler.Response {
			reg, err := svc.Register(ctx, req)
			if err != nil {
				return handler.JSONError(mapAuthError(err))
			}
			return handler.JSON(reg,
				handler.WithStatus(http.StatusCreated),
				handler.WithMessage("Register a new user"))
		},
		handler.WithBinders[handler.Context, RegisterInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, RegisterInput](errHandler),
	))

	r.Get("/refresh-token", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			session, err := svc.RefreshFromRequest(ctx, ctx.ResponseWriter(), ctx.Request())
			if err != nil {
				return handler.JSONError(mapAuthError(err))
			}
			return handler.JSON(session, handler.WithMessage("Get User by refresh token"))
		},
		handler.WithErrorHandler[handler.Context, struct{}](errHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(Middleware(svc.Resolver()))

		logout := handler.Wrap(
			func(ctx handler.Context, _ struct{}) handler.Response {
				identity, ok := IdentityFromContext(ctx)
				if !ok {
					return handler.JSONError(handler.ErrUnauthorized)
				}
				svc.Logout(ctx, ctx.ResponseWriter(), identity)
				return handler.JSON(nil, handler.WithMessage("Logout User"))
			},
			handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		)
		r.Post("/logout", logout)
		r.Get("/logout", logout)

		r.Get("/account", handler.Wrap(
			func(ctx handler.Context, _ struct{}) handler.Response {
				identity, ok := IdentityFromContext(ctx)
				if !ok {
					return handler.JSONError(handler.ErrUnauthorized)
				}
				return handler.JSON(map[string]Identity{"user": identity},
					handler.WithMessage("Get user information"))
			},
			handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		))

		r.Get("/profile", handler.Wrap(
			func(ctx handler.Context, _ struct{}) handler.Response {
				identity, ok := IdentityFromContext(ctx)
				if !ok {
					return handler.JSONError(handler.ErrUnauthorized)
				}
				return handler.JSON(identity, handler.WithMessage("Get user profile"))
			},
			handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		))
	})

	return r
}

// mapAuthError translates service errors to HTTP errors. Validation errors
// pass through untouched so the error handler can render field details.
func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrMissingToken):
		return handler.ErrUnauthorized
	case errors.Is(err, ErrEmailTaken):
		return handler.NewHTTPError(http.StatusConflict, "email_taken")
	case validator.IsValidationError(err):
		return err
	default:
		return err
	}
}
