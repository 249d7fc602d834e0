package jobs

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

// NewRouter mounts the job routes. Listing and detail are public so
// candidates can browse openings; mutations require authentication.
func NewRouter(svc *Service, guard func(http.Handler) http.Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	errHandler := handler.NewErrorHandler[handler.Context](log)

	r.Get("/", handler.Wrap(
		func(ctx handler.Context, p query.Params) handler.Response {
			page, err := svc.FindAll(ctx, p, ctx.Request().URL.Query())
			if err != nil {
				return handler.JSONError(mapJobError(err))
			}
			return handler.JSON(page, handler.WithMessage("Fetch jobs with pagination"))
		},
		handler.WithBinders[handler.Context, query.Params](binder.Query()),
		handler.WithErrorHandler[handler.Context, query.Params](errHandler),
	))

	r.Get("/{id}", handler.Wrap(
		func(ctx handler.Context, req getRequest) handler.Response {
			job, err := svc.FindOne(ctx, req.ID)
			if err != nil {
				return handler.JSONError(mapJobError(err))
			}
			return handler.JSON(job, handler.WithMessage("Fetch job by id"))
		},
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](errHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(guard)

		r.Post("/", handler.Wrap(
			func(ctx handler.Context, req CreateInput) handler.Response {
				identity, ok := auth.IdentityFromContext(ctx)
				if !ok {
					return handler.JSONError(handler.ErrUnauthorized)
				}
				job, err := svc.Create(ctx, req, identity.Stamp())
				if err != nil {
					return handler.JSONError(mapJobError(err))
				}
				return handler.JSON(job,
					handler.WithStatus(http.StatusCreated),
					handler.WithMessage("Create a new job"))
			},
			handler.WithBinders[handler.Context, CreateInput](binder.JSON()),
			handler.WithErrorHandler[handler.Context, CreateInput](errHandler),
		))

		r.Patch("/{id}", handler.Wrap(
			func(ctx handler.Context, req updateRequest) handler.Response {
				identity, ok := auth.IdentityFromContext(ctx)
				if !ok {
					return handler.JSONError(handler.ErrUnauthorized)
				}
				if err := svc.Update(ctx, req.ID, req.UpdateInput, identity.Stamp()); err != nil {
					return handler.JSONError(mapJobError(err))
				}
				return handler.JSON(nil, handler.WithMessage("Update a job"))
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
					return handler.JSONError(mapJobError(err))
				}
				return handler.JSON(nil, handler.WithMessage("Delete a job"))
			},
			handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, getRequest](errHandler),
		))
	})

	return r
}

func mapJobError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return handler.ErrNotFound
	}
	return err
}
