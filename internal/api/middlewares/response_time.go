package middlewares

import (
	"net/http"
	"time"
)

// timedWriter stamps X-Response-Time just before the first byte of the
// response goes out; headers cannot change after that.
type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
	status  int
}

func (w *timedWriter) stamp() {
	if !w.stamped {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
		w.stamped = true
	}
}

func (w *timedWriter) WriteHeader(code int) {
	w.status = code
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

// ResponseTime reports how long the handler took in an X-Response-Time
// header.
func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{
			ResponseWriter: w,
			start:          time.Now(),
			status:         http.StatusOK,
		}
		next.ServeHTTP(tw, r)

		// handlers that never write still get the header
		if !tw.stamped {
			tw.Header().Set("X-Response-Time", time.Since(tw.start).String())
		}
	})
}
