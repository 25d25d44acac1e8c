package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/udtree/pkg/checks"
	"github.com/matzehuels/udtree/pkg/conllu"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	rules   string // path to a TOML ruleset
	maxBody int64  // request body size limit in bytes
}

// newServeCmd creates the serve command.
// It exposes validation and text reconstruction over HTTP: clients POST
// CoNLL-U documents and receive JSON responses.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080", maxBody: 8 << 20}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose validation over HTTP",
		Long: `Start an HTTP server for treebank validation.

Endpoints:
  POST /v1/validate   CoNLL-U body, returns the findings report as JSON
  POST /v1/text       CoNLL-U body, returns reconstructed sentence text
  GET  /healthz       liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.rules, "rules", "", "TOML ruleset file (built-in defaults if empty)")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "request body size limit in bytes")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg := checks.Default()
	if opts.rules != "" {
		var err error
		cfg, err = checks.LoadConfig(opts.rules)
		if err != nil {
			return fmt.Errorf("load ruleset: %w", err)
		}
	}
	checker := checks.New(cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/v1/validate", handleValidate(checker, opts.maxBody))
	r.Post("/v1/text", handleText(opts.maxBody))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// validateResponse is the JSON body returned by POST /v1/validate.
type validateResponse struct {
	Sentences int              `json:"sentences"`
	Total     int              `json:"total"`
	Counts    map[string]int   `json:"counts"`
	Findings  []checks.Finding `json:"findings"`
}

func handleValidate(checker *checks.Checker, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "read request body")
			return
		}

		roots, err := conllu.Parse(data)
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		rep := checks.NewReport()
		for _, root := range roots {
			checker.Check(root, rep)
		}

		writeJSON(w, http.StatusOK, validateResponse{
			Sentences: len(roots),
			Total:     rep.Total(),
			Counts:    rep.Counts,
			Findings:  rep.Findings,
		})
	}
}

// textResponse is one sentence in the JSON body returned by POST /v1/text.
type textResponse struct {
	SentID string `json:"sent_id"`
	Text   string `json:"text"`
}

func handleText(maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "read request body")
			return
		}

		roots, err := conllu.Parse(data)
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		out := make([]textResponse, 0, len(roots))
		for _, root := range roots {
			out = append(out, textResponse{
				SentID: root.SentID,
				Text:   strings.TrimRight(root.Node().ComputeSentence(), " "),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
