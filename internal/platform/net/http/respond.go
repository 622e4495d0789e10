// Package http hosts the chi server adapter and the JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"gsa/internal/platform/logger"
	pnet "gsa/internal/platform/net"
)

// Envelope is the body every endpoint answers with
type Envelope = pnet.Wire

// Response is what return-style handlers produce. An error Body is rendered
// as a failure envelope
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK answers 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created answers 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent answers 204 with no body
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with the status err maps to
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning func to a Handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).Write(w, r) }
}

// Write renders resp onto w
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h := w.Header()
	for k, vv := range resp.Header {
		h[k] = append(h[k], vv...)
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(resp.Status)
		return
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		writeWire(w, r, pnet.Failure(err, reqID))
		return
	}
	writeWire(w, r, pnet.Success(resp.Status, resp.Body, reqID))
}

// RespondError writes the failure envelope for err
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	writeWire(w, r, pnet.Failure(err, pnet.RequestID(r.Context())))
}

func writeWire(w stdhttp.ResponseWriter, r *stdhttp.Request, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.C(r.Context()).Debug().Err(err).Msg("response write failed")
	}
}
