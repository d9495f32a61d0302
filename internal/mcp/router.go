package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	apperrors "github.com/kolsense/kolsense/internal/pkg/errors"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"go.uber.org/zap"
)

// Handler executes one action against its raw params
type Handler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Router dispatches requests to registered action handlers. Registration
// happens once at startup; Dispatch is safe for concurrent use after that.
type Router struct {
	handlers map[string]Handler
	logger   *logger.Logger
}

func NewRouter(log *logger.Logger) *Router {
	return &Router{
		handlers: make(map[string]Handler),
		logger:   log,
	}
}

// Register binds an action name to its handler, replacing any previous
// binding
func (r *Router) Register(action string, h Handler) {
	r.handlers[action] = h
}

// Actions returns the registered action names, sorted
func (r *Router) Actions() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes a request to its handler. Requests that cannot be routed
// get a protocol Error; handler failures are folded into the result as an
// ErrorEnvelope so the caller still sees which action failed.
func (r *Router) Dispatch(ctx context.Context, req Request) Response {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	if req.Action == "" {
		return Response{
			ID: id,
			Error: &Error{
				Code:    "INVALID_REQUEST",
				Message: "Missing required field: action",
			},
		}
	}

	handler, ok := r.handlers[req.Action]
	if !ok {
		r.logger.Warn("unsupported action", zap.String("action", req.Action))
		return Response{
			ID: id,
			Error: &Error{
				Code:    "UNSUPPORTED_ACTION",
				Message: fmt.Sprintf("Unsupported action: %s", req.Action),
			},
		}
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		r.logger.Error("action failed",
			zap.String("action", req.Action),
			zap.String("request_id", id),
			zap.Error(err),
		)
		return Response{
			ID: id,
			Result: ErrorEnvelope{
				Error:   errorMessage(err),
				Action:  req.Action,
				Success: false,
			},
		}
	}

	return Response{ID: id, Result: result}
}

// errorMessage renders handler failures without the internal code prefix
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		detail := appErr.Details
		if detail == "" && appErr.Err != nil {
			detail = appErr.Err.Error()
		}
		return apperrors.FormatError(appErr.Code, detail)
	}
	return err.Error()
}
