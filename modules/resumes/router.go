package resumes

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

type statusRequest struct {
	ID     string `path:"id" json:"-"`
	Status string `json:"status"`
}

func actorFrom(identity auth.Identity) Actor {
	return Actor{ID: identity.ID, Name: identity.Name, Email: identity.Email}
}

// NewRouter mounts the resume routes. The whole resource is guarded:
// submissions belong to authenticated candidates, review to HR.
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
			resume, err := svc.Create(ctx, req, actorFrom(identity))
			if err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(resume,
				handler.WithStatus(http.StatusCreated),
				handler.WithMessage("Create a new resume"))
		},
		handler.WithBinders[handler.Context, CreateInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CreateInput](errHandler),
	))

	r.Get("/", handler.Wrap(
		func(ctx handler.Context, p query.Params) handler.Response {
			page, err := svc.FindAll(ctx, p, ctx.Request().URL.Query())
			if err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(page, handler.WithMessage("Fetch resumes with pagination"))
		},
		handler.WithBinders[handler.Context, query.Params](binder.Query()),
		handler.WithErrorHandler[handler.Context, query.Params](errHandler),
	))

	r.Post("/by-user", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			resumes, err := svc.FindByUser(ctx, actorFrom(identity))
			if err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(resumes, handler.WithMessage("Get resumes by user"))
		},
		handler.WithErrorHandler[handler.Context, struct{}](errHandler),
	))

	r.Get("/{id}", handler.Wrap(
		func(ctx handler.Context, req getRequest) handler.Response {
			resume, err := svc.FindOne(ctx, req.ID)
			if err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(resume, handler.WithMessage("Fetch resume by id"))
		},
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](errHandler),
	))

	r.Patch("/{id}/status", handler.Wrap(
		func(ctx handler.Context, req statusRequest) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			if err := svc.UpdateStatus(ctx, req.ID, actorFrom(identity), req.Status); err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(nil, handler.WithMessage("Update resume status"))
		},
		handler.WithBinders[handler.Context, statusRequest](binder.JSON(), binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, statusRequest](errHandler),
	))

	r.Patch("/{id}", handler.Wrap(
		func(ctx handler.Context, req updateRequest) handler.Response {
			identity, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			if err := svc.Update(ctx, req.ID, req.UpdateInput, actorFrom(identity)); err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(nil, handler.WithMessage("Update a resume"))
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
			if err := svc.Remove(ctx, req.ID, actorFrom(identity)); err != nil {
				return handler.JSONError(mapResumeError(err))
			}
			return handler.JSON(nil, handler.WithMessage("Delete a resume"))
		},
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](errHandler),
	))

	return r
}

func mapResumeError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return handler.ErrNotFound
	}
	return err
}
