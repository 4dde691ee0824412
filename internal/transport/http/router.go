package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/logging"
	"hoops-trivia/internal/metrics"
)

const qrSize = 256

// RouterConfig wires the HTTP surface. Metrics, Reload and StaticDir are optional.
type RouterConfig struct {
	Service   *app.GameService
	Catalogs  app.CatalogRepository
	Metrics   *metrics.Recorder
	Reload    http.Handler
	PublicURL string
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler for the game server.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := httprouter.New()
	ws := NewWSHandler(cfg.Service, cfg.Logger)
	api := &catalogAPI{catalogs: cfg.Catalogs, logger: cfg.Logger}

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		logging.Error(cfg.Logger, "handler panic", nil, logging.FieldPath, r.URL.Path, "panic", v)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}

	mux.GET("/healthz", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		mux.Handler(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	mux.GET("/api/games", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		writeJSON(w, http.StatusOK, domain.Games)
	})
	mux.GET("/api/teams", api.teams)
	mux.GET("/api/teams/:id", api.team)
	mux.GET("/api/players", api.players)
	mux.HandlerFunc(http.MethodGet, "/ws", ws.ServeWS)
	mux.GET("/qr.png", serveQR(cfg.PublicURL))
	if cfg.Reload != nil {
		mux.Handler(http.MethodGet, "/livereload", cfg.Reload)
	}
	if cfg.StaticDir != "" {
		mux.NotFound = http.FileServer(http.Dir(cfg.StaticDir))
	}

	return LoggingMiddleware(cfg.Logger, mux)
}

type catalogAPI struct {
	catalogs app.CatalogRepository
	logger   *slog.Logger
}

func (a *catalogAPI) teams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cat, err := a.catalogs.GetCatalog(r.Context())
	if err != nil {
		a.unavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat.AllTeams())
}

func (a *catalogAPI) team(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cat, err := a.catalogs.GetCatalog(r.Context())
	if err != nil {
		a.unavailable(w, err)
		return
	}
	team, ok := cat.TeamByID(ps.ByName("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorPayload{Message: domain.ErrTeamNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (a *catalogAPI) players(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cat, err := a.catalogs.GetCatalog(r.Context())
	if err != nil {
		a.unavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat.AllPlayers())
}

func (a *catalogAPI) unavailable(w http.ResponseWriter, err error) {
	logging.Error(a.logger, "load catalog", err)
	writeJSON(w, http.StatusServiceUnavailable, errorPayload{Message: "catalog unavailable"})
}

// serveQR renders a QR code pointing phones at the game.
func serveQR(publicURL string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		target := publicURL
		if target == "" {
			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
				scheme = proto
			}
			target = scheme + "://" + r.Host + "/"
		}

		png, err := qrcode.Encode(target, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(png)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
