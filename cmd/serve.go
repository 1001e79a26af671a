package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/icp-autopilot/internal/enrich"
	"github.com/sells-group/icp-autopilot/internal/extract"
	"github.com/sells-group/icp-autopilot/internal/icp"
	"github.com/sells-group/icp-autopilot/internal/model"
	"github.com/sells-group/icp-autopilot/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for the ICP discovery workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, st, err := initService(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		router := newRouter(svc, initPipeline(), initEngine())

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter wires the workflow API. Enrichment and analysis are guarded so
// only one run can be in flight at a time.
func newRouter(svc *store.Service, pipeline *enrich.Pipeline, engine *icp.Engine) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, svc.State())
		})

		r.Post("/emails", func(w http.ResponseWriter, req *http.Request) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable request body")
				return
			}

			emails := extract.Emails(string(body))
			if len(emails) == 0 {
				writeError(w, http.StatusBadRequest, "no email addresses found in input")
				return
			}

			if err := svc.SetEmails(req.Context(), emails); err != nil {
				serverError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"emails": emails})
		})

		r.Post("/enrich", func(w http.ResponseWriter, req *http.Request) {
			emails := svc.State().Emails
			if len(emails) == 0 {
				writeError(w, http.StatusBadRequest, "no email batch loaded")
				return
			}

			if !svc.BeginRun() {
				writeError(w, http.StatusConflict, "a run is already in progress")
				return
			}
			defer svc.EndRun()

			records, err := pipeline.Run(req.Context(), emails, func(pct float64) {
				zap.L().Debug("enrichment progress", zap.Float64("percent", pct))
			})
			if err != nil {
				serverError(w, err)
				return
			}

			if err := svc.SetRecords(req.Context(), records); err != nil {
				serverError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"records": records})
		})

		r.Post("/analyze", func(w http.ResponseWriter, req *http.Request) {
			records := svc.State().Records
			if len(records) == 0 {
				writeError(w, http.StatusBadRequest, "no enriched records to analyze")
				return
			}

			if !svc.BeginRun() {
				writeError(w, http.StatusConflict, "a run is already in progress")
				return
			}
			defer svc.EndRun()

			segments, err := engine.Analyze(req.Context(), records)
			if err != nil {
				serverError(w, err)
				return
			}

			if err := svc.SetSegments(req.Context(), segments); err != nil {
				serverError(w, err)
				return
			}

			from, to, drifted := svc.State().Drift()
			resp := map[string]any{"segments": segments}
			if drifted {
				resp["drift"] = map[string]string{"from": from, "to": to}
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Get("/actions", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"sections":  model.ActionCatalog,
				"activated": svc.State().ActivatedActions,
			})
		})

		r.Post("/actions/{id}/toggle", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			if err := svc.ToggleAction(req.Context(), id); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown action %q", id))
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"activated": svc.State().ActivatedActions})
		})

		r.Post("/actions/activate-all", func(w http.ResponseWriter, req *http.Request) {
			if err := svc.ActivateAllActions(req.Context()); err != nil {
				serverError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"activated": svc.State().ActivatedActions})
		})

		r.Get("/history", func(w http.ResponseWriter, _ *http.Request) {
			state := svc.State()
			resp := map[string]any{"history": state.History}
			if from, to, drifted := state.Drift(); drifted {
				resp["drift"] = map[string]string{"from": from, "to": to}
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Get("/export", func(w http.ResponseWriter, _ *http.Request) {
			segments := svc.State().Segments
			if len(segments) == 0 {
				writeError(w, http.StatusNotFound, "no analysis results to export")
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="icp-segments.txt"`)
			_, _ = io.WriteString(w, icp.FormatReport(segments))
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func serverError(w http.ResponseWriter, err error) {
	zap.L().Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
