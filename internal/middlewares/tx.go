package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-tracker/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The handler's response is held back until the transaction is settled: a status
// of 400 or above rolls back, anything else commits. A failed commit replaces the
// response with 500. Hooks registered through AfterCommit run only after a
// successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", reqID, "error", err)
				writeErrorJSON(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, commitHooksKey{}, hooks)

			bw := newBufferedWriter(w)
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "request_id", reqID, "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "request_id", reqID, "error", err)
				writeErrorJSON(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			for _, fn := range hooks.fns {
				fn()
			}
			bw.flush()
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

type commitHooksKey struct{}

type commitHooks struct {
	fns []func()
}

// AfterCommit defers fn until the request transaction in ctx commits.
// It is dropped on rollback. Without a transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

// bufferedWriter holds status, headers and body until flush is called.
type bufferedWriter struct {
	w           http.ResponseWriter
	header      http.Header
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{w: w, header: make(http.Header), statusCode: http.StatusOK}
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	dst := bw.w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	bw.w.WriteHeader(bw.statusCode)
	bw.w.Write(bw.body.Bytes())
}
