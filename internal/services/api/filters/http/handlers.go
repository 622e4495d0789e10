// Package http provides http transport for filters
package http

import (
	stdhttp "net/http"

	"gsa/internal/modkit/httpkit"
	"gsa/internal/services/api/filters/domain"
	svc "gsa/internal/services/api/filters/service"
)

// Register mounts filters endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.SaveInput](r, "/", h.create)

	httpkit.PostJSON[domain.FilterInput](r, "/normalize", h.normalize)
	httpkit.PostJSON[domain.ComposeInput](r, "/compose", h.compose)
	httpkit.PostJSON[domain.PageInput](r, "/page", h.page)

	httpkit.Get(r, "/defaults/{entity_type}", h.getDefault)
	httpkit.PutJSON[domain.DefaultInput](r, "/defaults/{entity_type}", h.setDefault)

	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.SaveInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc svc.Service }

// @Summary List saved filters
// @Description The filter query parameter is itself a filter string: name~x, type=x, free text, sort, first and rows
// @Tags Filters
// @Produce json
// @Param filter query string false "Filter string" example(name~scan rows=10)
// @Success 200 {object} domain.ListResult "ok"
// @Router /filters [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), r.URL.Query().Get("filter"))
}

// @Summary Save a filter
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Filter"
// @Success 201 {object} domain.SavedFilter "created"
// @Router /filters [post]
func (h *handlers) create(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Get a saved filter
// @Tags Filters
// @Produce json
// @Param id path string true "Filter id"
// @Success 200 {object} domain.SavedFilter "ok"
// @Router /filters/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Replace a saved filter
// @Tags Filters
// @Accept json
// @Produce json
// @Param id path string true "Filter id"
// @Param payload body domain.SaveInput true "Filter"
// @Success 200 {object} domain.SavedFilter "ok"
// @Router /filters/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.Param(r, "id"), in)
}

// @Summary Delete a saved filter
// @Tags Filters
// @Param id path string true "Filter id"
// @Success 204 "deleted"
// @Router /filters/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Normalize a filter string
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filter"
// @Success 200 {object} domain.Normalized "ok"
// @Router /filters/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Normalize(r.Context(), in.Filter), nil
}

// @Summary Combine two filters
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body domain.ComposeInput true "Operands"
// @Success 200 {object} domain.ComposeResult "ok"
// @Router /filters/compose [post]
func (h *handlers) compose(r *stdhttp.Request, in domain.ComposeInput) (any, error) {
	return h.svc.Compose(r.Context(), in)
}

// @Summary Refetch parameters for a page move
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body domain.PageInput true "Page move"
// @Success 200 {object} pagination.Params "ok"
// @Router /filters/page [post]
func (h *handlers) page(r *stdhttp.Request, in domain.PageInput) (any, error) {
	return h.svc.Page(r.Context(), in)
}

// @Summary Default filter of an entity type
// @Tags Filters
// @Produce json
// @Param entity_type path string true "Entity type" example(task)
// @Success 200 {object} domain.Default "ok"
// @Router /filters/defaults/{entity_type} [get]
func (h *handlers) getDefault(r *stdhttp.Request) (any, error) {
	return h.svc.GetDefault(r.Context(), httpkit.Param(r, "entity_type"))
}

// @Summary Set or clear the default filter of an entity type
// @Tags Filters
// @Accept json
// @Produce json
// @Param entity_type path string true "Entity type" example(task)
// @Param payload body domain.DefaultInput true "Saved filter id, empty clears"
// @Success 200 {object} domain.Default "ok"
// @Router /filters/defaults/{entity_type} [put]
func (h *handlers) setDefault(r *stdhttp.Request, in domain.DefaultInput) (any, error) {
	return h.svc.SetDefault(r.Context(), httpkit.Param(r, "entity_type"), in)
}
