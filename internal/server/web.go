package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/services/employees"
	"github.com/UnknownOlympus/roster/internal/services/entry"
	"github.com/UnknownOlympus/roster/internal/services/roster"
	"github.com/google/uuid"
)

//go:embed templates/roster.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/roster.html"))

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Web serves the roster page. Every request holds the lock for its whole
// duration, so the coordinator sees one event at a time.
type Web struct {
	mu      sync.Mutex
	staff   *employees.Staff
	log     *slog.Logger
	metrics *metrics.Metrics
}

type header struct {
	Field     models.Field
	Title     string
	Indicator string
}

type pageRow struct {
	ViewIndex int
	Employee  models.Employee
	Editing   bool
	Draft     models.Employee
}

type pageData struct {
	Draft       models.Employee
	SubmitLabel string
	Editing     bool
	Error       string
	Filter      roster.Filter
	Headers     []header
	Rows        []pageRow
	Total       int
}

func NewWeb(log *slog.Logger, staff *employees.Staff, metrics *metrics.Metrics) *Web {
	return &Web{staff: staff, log: log, metrics: metrics}
}

// Len returns the number of records in the roster.
func (w *Web) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.staff.Snapshot().Total
}

// Routes returns the handler serving the roster page and its form actions.
func (w *Web) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", w.handlePage)
	mux.HandleFunc("POST /employees", w.handleSubmit)
	mux.HandleFunc("POST /employees/reset", w.handleReset)
	mux.HandleFunc("POST /filter", w.handleFilter)
	mux.HandleFunc("POST /sort/{field}", w.handleSort)
	mux.HandleFunc("POST /rows/cancel", w.handleCancel)
	mux.HandleFunc("POST /rows/{index}/{action}", w.handleRow)

	return w.withRequestID(mux)
}

func (w *Web) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		rw.Header().Set(RequestIDHeader, requestID)

		log := w.log.With(slog.String("request_id", requestID))
		ctx := context.WithValue(req.Context(), ctxKey{}, log)

		start := time.Now()
		next.ServeHTTP(rw, req.WithContext(ctx))
		log.DebugContext(ctx, "Request served",
			"method", req.Method, "path", req.URL.Path, "duration", time.Since(start))
	})
}

func (w *Web) logger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return log
	}

	return w.log
}

func (w *Web) handlePage(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.render(rw, req, http.StatusOK, "")
}

func (w *Web) handleSubmit(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := req.ParseForm(); err != nil {
		http.Error(rw, "malformed form", http.StatusBadRequest)
		return
	}

	for _, field := range models.Fields {
		w.staff.SetFormField(field, req.PostFormValue(string(field)))
	}

	if _, err := w.staff.SubmitForm(); err != nil {
		if errors.Is(err, entry.ErrRequiredField) {
			w.render(rw, req, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.logger(req.Context()).ErrorContext(req.Context(), "Failed to submit form", sl.Err(err))
		http.Error(rw, "internal error", http.StatusInternalServerError)
		return
	}

	redirectHome(rw, req)
}

func (w *Web) handleReset(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.staff.ResetForm()
	redirectHome(rw, req)
}

func (w *Web) handleFilter(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := req.ParseForm(); err != nil {
		http.Error(rw, "malformed form", http.StatusBadRequest)
		return
	}

	for _, field := range models.Fields {
		w.staff.SetFilter(field, req.PostFormValue(string(field)))
	}

	redirectHome(rw, req)
}

func (w *Web) handleSort(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	field, err := models.ParseField(req.PathValue("field"))
	if err != nil {
		http.NotFound(rw, req)
		return
	}

	sort := w.staff.ToggleSort(field)
	w.logger(req.Context()).DebugContext(req.Context(), "Sort toggled",
		"field", sort.Key, "direction", sort.Direction.String())

	redirectHome(rw, req)
}

func (w *Web) handleCancel(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.staff.CancelEdit()
	redirectHome(rw, req)
}

func (w *Web) handleRow(rw http.ResponseWriter, req *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index, err := strconv.Atoi(req.PathValue("index"))
	if err != nil {
		http.Error(rw, "row index must be an integer", http.StatusBadRequest)
		return
	}

	switch req.PathValue("action") {
	case "edit":
		w.staff.BeginEdit(index)
	case "delete":
		w.staff.Delete(index)
	case "load":
		w.staff.LoadIntoForm(index)
	case "update":
		if err = req.ParseForm(); err != nil {
			http.Error(rw, "malformed form", http.StatusBadRequest)
			return
		}
		w.update(index, req)
	default:
		http.NotFound(rw, req)
		return
	}

	redirectHome(rw, req)
}

// update commits the inline draft when index is the row being edited.
func (w *Web) update(index int, req *http.Request) {
	snap := w.staff.Snapshot()
	if index < 0 || index >= len(snap.Rows) || !snap.IsEditing(snap.Rows[index]) {
		return
	}

	for _, field := range models.Fields {
		if values, ok := req.PostForm[string(field)]; ok && len(values) > 0 {
			w.staff.SetDraftField(field, values[0])
		}
	}
	w.staff.CommitEdit()
}

func (w *Web) render(rw http.ResponseWriter, req *http.Request, status int, message string) {
	start := time.Now()
	defer func() {
		w.metrics.RenderDuration.WithLabelValues("web").Observe(time.Since(start).Seconds())
	}()

	snap := w.staff.Snapshot()
	_, editing := snap.FormMode.Editing()

	data := pageData{
		Draft:       snap.Draft,
		SubmitLabel: snap.SubmitLabel,
		Editing:     editing,
		Error:       message,
		Filter:      snap.Filter,
		Total:       snap.Total,
		Rows:        make([]pageRow, 0, len(snap.Rows)),
	}
	for _, field := range models.Fields {
		data.Headers = append(data.Headers, header{Field: field, Title: field.Title(), Indicator: snap.Indicator(field)})
	}
	for i, row := range snap.Rows {
		pr := pageRow{ViewIndex: i, Employee: row.Employee}
		if snap.IsEditing(row) {
			pr.Editing = true
			pr.Draft = snap.Edit.Draft
		}
		data.Rows = append(data.Rows, pr)
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)
	if err := pageTemplate.Execute(rw, data); err != nil {
		w.logger(req.Context()).ErrorContext(req.Context(), "Failed to render roster page", sl.Err(err))
	}
}

func redirectHome(rw http.ResponseWriter, req *http.Request) {
	http.Redirect(rw, req, "/", http.StatusSeeOther)
}
