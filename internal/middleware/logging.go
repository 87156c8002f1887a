package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// routeName is empty for requests that did not match a named route.
func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		return route.GetName()
	}
	return ""
}

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.IsLevelEnabled(log.TraceLevel) {
				log.WithFields(log.Fields{
					"route": routeName(r),
					"ip":    ClientIPKey(r),
					"ua":    r.UserAgent(),
				}).Tracef(" ====> request [%s] path: [%s]", r.Method, r.URL.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}
