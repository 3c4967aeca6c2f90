package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"
)

// ErrorHandler turns a panic in a handler into a 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(nil, r.URL.Path))
}
