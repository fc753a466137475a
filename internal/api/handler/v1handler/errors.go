package v1handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/serrors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

//nolint: gochecknoglobals
var (
	kindStatus = map[serrors.Kind]int{
		serrors.ErrNotFound:     http.StatusNotFound,
		serrors.ErrBadRequest:   http.StatusBadRequest,
		serrors.ErrUnauthorized: http.StatusUnauthorized,
		serrors.ErrConflict:     http.StatusConflict,
		serrors.ErrUnavailable:  http.StatusServiceUnavailable,
		serrors.ErrInternal:     http.StatusInternalServerError,
	}
	kindMessage = map[serrors.Kind]string{
		serrors.ErrNotFound:     "resource not found",
		serrors.ErrBadRequest:   "bad request",
		serrors.ErrUnauthorized: "unauthorized",
		serrors.ErrConflict:     "conflict",
		serrors.ErrUnavailable:  "service unavailable",
		serrors.ErrInternal:     "internal error",
	}
)

// NewError maps err to a status code and response body. Errors without a
// semantic kind are internal; their text never reaches the client.
func (h Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}

	msg := kindMessage[kind]
	var serr *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return status, ErrorResponse{Code: kind.Error(), Message: msg}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, res := h.NewError(r.Context(), err)
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(res.Code)
		e.FieldStart("message")
		e.Str(res.Message)
		e.ObjEnd()
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
