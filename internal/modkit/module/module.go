// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "gsa/internal/platform/net/http"
)

// Module mirrors modkit.Module without importing it, so a module package can
// export its own ports type without an import knot
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
