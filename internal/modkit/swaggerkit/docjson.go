package swaggerkit

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	pnet "gsa/internal/platform/net"
	docs "gsa/internal/services/api/docs"
)

// errorDef is the definition name of the failure envelope
const errorDef = "ErrorResponse"

// docReader returns the raw swagger document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		defs, _ := spec["definitions"].(map[string]any)
		if defs == nil {
			defs = map[string]any{}
			spec["definitions"] = defs
		}
		if _, ok := defs[errorDef]; !ok {
			defs[errorDef] = wireSchema()
		}
		paths, _ := spec["paths"].(map[string]any)
		forEachOperation(paths, addErrorResponses)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// wireSchema describes pnet.Wire from its json tags. data is left untyped
func wireSchema() map[string]any {
	props := map[string]any{}
	var required []any
	t := reflect.TypeFor[pnet.Wire]()
	for i := range t.NumField() {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" || name == "data" {
			continue
		}
		typ := "string"
		switch f.Type.Kind() {
		case reflect.Int, reflect.Int64, reflect.Uint16, reflect.Uint32:
			typ = "integer"
		}
		props[name] = map[string]any{"type": typ}
		if !strings.Contains(opts, "omitempty") {
			required = append(required, name)
		}
	}
	return map[string]any{"type": "object", "properties": props, "required": required}
}

func forEachOperation(paths map[string]any, fn func(op map[string]any)) {
	for _, p := range paths {
		node, _ := p.(map[string]any)
		for _, o := range node {
			if op, ok := o.(map[string]any); ok {
				fn(op)
			}
		}
	}
}

// addErrorResponses documents the failures every handler can answer with.
// 422 only applies to operations that take parameters or a body
func addErrorResponses(op map[string]any) {
	resps, _ := op["responses"].(map[string]any)
	if resps == nil {
		resps = map[string]any{}
		op["responses"] = resps
	}
	ref := map[string]any{"$ref": "#/definitions/" + errorDef}
	add := func(code int) {
		if _, ok := resps[strconv.Itoa(code)]; !ok {
			resps[strconv.Itoa(code)] = map[string]any{"description": http.StatusText(code), "schema": ref}
		}
	}
	add(http.StatusBadRequest)
	if params, _ := op["parameters"].([]any); len(params) > 0 {
		add(http.StatusUnprocessableEntity)
	}
	add(http.StatusInternalServerError)
	add(http.StatusServiceUnavailable)
}
