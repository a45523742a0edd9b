package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"pns-graph/domain"
	"pns-graph/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

const (
	defaultPrefix = "domain:"
	pageLimit     = 500
	searchLimit   = 50
)

type InspectRow struct {
	Key    string
	Type   string
	Detail string
}

type RowMapper func(entry storage.Entry) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix   string
	Prefixes []string
	Items    []InspectRow
	Stats    map[string]any
}

// NewDebugMux serves the Badger inspector on /inspect, the name search on /search
// and the given metrics handler on /metrics.
func NewDebugMux(db *badger.DB, names storage.INameIndex, metrics http.Handler, mapper RowMapper, statsProvider StatsProvider) *http.ServeMux {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = defaultPrefix
		}

		data := PageData{
			Prefix:   prefix,
			Prefixes: storage.Prefixes,
			Stats:    make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		entries, err := storage.Browse(db, prefix, pageLimit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Items = lo.Map(entries, func(e storage.Entry, _ int) InspectRow { return mapper(e) })

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	if names != nil {
		mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
			limit := searchLimit
			if raw := r.URL.Query().Get("limit"); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					http.Error(w, "invalid limit", http.StatusBadRequest)
					return
				}
				limit = n
			}
			ids, err := names.Search(r.Context(), r.URL.Query().Get("q"), limit)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if ids == nil {
				ids = []domain.NodeID{}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(ids)
		})
	}

	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	return mux
}

// StartDebugServer listens on all interfaces in the background. The caller shuts it down.
func StartDebugServer(log *slog.Logger, port int, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", port),
		Handler: handler,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Debug server stopped", "error", err)
		}
	}()
	log.Info("Debug inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", port))
	return srv
}

func DefaultMapper(entry storage.Entry) InspectRow {
	row := InspectRow{Key: entry.Key, Type: entry.Type, Detail: "undecodable"}
	switch v := entry.Value.(type) {
	case nil:
	case domain.Domain:
		row.Detail = fmt.Sprintf("name=%s owner=%s parent=%s children=%d pruned=%t",
			lo.FromPtrOr(v.Name, "-"), v.Owner, v.Parent, v.SubdomainCount, v.Pruned)
	case domain.Registration:
		row.Detail = fmt.Sprintf("label=%s expiry=%d capacity=%d origin=%s",
			lo.FromPtrOr(v.LabelName, "-"), v.ExpiryDate, v.Capacity, v.Origin)
	default:
		row.Detail = fmt.Sprintf("%+v", v)
	}
	return row
}
