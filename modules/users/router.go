package users

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirehub/jobboard/handler"
	"github.com/hirehub/jobboard/modules/auth"
	"github.com/hirehub/jobboard/pkg/binder"
	"github.com/hirehub/jobboard/pkg/query"
)

type getRequest struct {
	ID string `path:"id"`
}

type updateRequest struct {
	ID string `path:"id" json:"-"`
	UpdateInput
}

// NewRouter mounts the user routes. The whole resource is guarded: account
// data is only visible to authenticated callers.
func NewRouter(svc *Service, guard func(http.Handler) http.Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(guard)
	errHandler := handler.NewErrorHandler[handler.Context](log)

	r.Post("/", handler.Wrap(
		func(ctx handler.Context, req CreateInput) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			created, err := svc.Create(ctx, req, identity.Stamp())
			if err != nil {
				return handler.JSONError(mapUserError(err))
			}
			return handler.JSON(created,
				handler.WithStatus(http.StatusCreated),
				handler.WithMessage("Create a new User"))
		},
		handler.WithBinders[handler.Context, CreateInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CreateInput](errHandler),
	))

	r.Get("/", handler.Wrap(
		func(ctx handler.Context, p query.Params) handler.Response {
			page, err := svc.FindAll(ctx, p, ctx.Request().URL.Query())
			if err != nil {
				return handler.JSONError(mapUserError(err))
			}
			return handler.JSON(page, handler.WithMessage("Fetch users with pagination"))
		},
		handler.WithBinders[handler.Context, query.Params](binder.Query()),
		handler.WithErrorHandler[handler.Context, query.Params](errHandler),
	))

	r.Get("/{id}", handler.Wrap(
		func(ctx handler.Context, req getRequest) handler.Response {
			user, err := svc.FindOne(ctx, req.ID)
			if err != nil {
				return handler.JSONError(mapUserError(err))
			}
			return handler.JSON(user, handler.WithMessage("Fetch user by id"))
		},
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](errHandler),
	))

	r.Patch("/{id}", handler.Wrap(
		func(ctx handler.Context, req updateRequest) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			if err := svc.Update(ctx, req.ID, req.UpdateInput, identity.Stamp()); err != nil {
				return handler.JSONError(mapUserError(err))
			}
			return handler.JSON(nil, handler.WithMessage("Update a User"))
		},
		handler.WithBinders[handler.Context, updateRequest](binder.JSON(), binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, updateRequest](errHandler),
	))

	r.Delete("/{id}", handler.Wrap(
		func(ctx handler.Context, req getRequest) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			if err := svc.Remove(ctx, req.ID, identity.Stamp()); err != nil {
				return handler.JSONError(mapUserError(err))
			}
			return handler.JSON(nil, handler.WithMessage("Delete a User"))
		},
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](errHandler),
	))

	return r
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return handler.ErrNotFound
	case errors.Is(err, ErrEmailTaken):
		return handler.NewHTTPError(http.StatusConflict, "email_taken")
	default:
		return err
	}
}
