// Package http provides http transport for the entities proxy
package http

import (
	stdhttp "net/http"

	"gsa/internal/modkit/httpkit"
	svc "gsa/internal/services/api/entities/service"
)

// Register mounts entities endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/{entity_type}", h.list)
}

type handlers struct{ svc svc.Service }

// @Summary List backend entities through a filter
// @Description Without a filter the saved default of the type applies, otherwise the default only fills missing settings
// @Tags Entities
// @Produce json
// @Param entity_type path string true "Entity type" example(task)
// @Param filter query string false "Filter string" example(name~scan rows=10)
// @Param X-GMP-Token header string false "Backend session token"
// @Success 200 {object} domain.Page "ok"
// @Router /entities/{entity_type} [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), httpkit.Param(r, "entity_type"), r.URL.Query().Get("filter"))
}
