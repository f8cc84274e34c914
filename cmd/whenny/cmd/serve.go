package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/msto63/whenny"
	werror "github.com/msto63/whenny/core/error"
	"github.com/msto63/whenny/core/log"
)

var (
	serveAddr    string
	serveJSONLog bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP/WebSocket rendering service",
	Long: `Runs a small rendering service.

Endpoints:
  POST /v1/format  - render a timestamp (JSON request/response)
  GET  /v1/ticker  - WebSocket stream of per-second clock renderings
  GET  /healthz    - liveness probe

Rendering on the server applies the configured server fallback policy
because the server has no access to the viewer's timezone.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8710", "listen address")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "emit JSON log lines")
	rootCmd.AddCommand(serveCmd)
}

// formatRequest is the body of POST /v1/format
type formatRequest struct {
	Value    interface{} `json:"value"`
	Mode     string      `json:"mode"`     // format, relative, smart, duration
	Template string      `json:"template"` // for mode=format
	Preset   string      `json:"preset"`   // for mode=format
	Zone     string      `json:"zone"`
	Seconds  float64     `json:"seconds"` // for mode=duration
	Style    string      `json:"style"`   // for mode=duration
}

type formatResponse struct {
	Rendered string `json:"rendered"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type server struct {
	cfg      whenny.Config
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("unable to load config", err)
		return err
	}

	logger := newLogger("serve")
	if serveJSONLog {
		logger = logger.WithFormatter(log.NewJSONFormatter())
	}

	srv := &server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/format", srv.handleFormat)
	mux.HandleFunc("/v1/ticker", srv.handleTicker)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:         serveAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", log.Fields{"addr": serveAddr, "fallback": cfg.Server.Fallback})
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", log.Fields{"error": err.Error()})
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", log.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}

func (s *server) handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, werror.Wrap(err, "invalid request body").
			WithCode(werror.CodeValidationFailed))
		return
	}

	rendered, err := s.render(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(formatResponse{Rendered: rendered})
}

// render dispatches a format request to the matching whenny operation
func (s *server) render(req formatRequest) (string, error) {
	if req.Mode == "duration" {
		d := whenny.Duration(req.Seconds)
		switch req.Style {
		case "compact":
			return d.Compact(s.cfg), nil
		case "clock":
			return d.Clock(), nil
		case "human":
			return d.Human(s.cfg), nil
		default:
			return d.Long(s.cfg), nil
		}
	}

	instant, err := whenny.Coerce(req.Value)
	if err != nil {
		return "", err
	}

	now := whenny.Now()

	switch req.Mode {
	case "relative":
		if req.Zone != "" {
			return whenny.RelativeInZone(instant, now, s.cfg, req.Zone)
		}
		return whenny.Relative(instant, now, s.cfg), nil

	case "smart":
		if req.Zone != "" {
			return whenny.SmartInZone(instant, now, s.cfg, req.Zone)
		}
		// Without a viewer zone the configured fallback policy decides.
		return whenny.Smart(instant, now, s.cfg), nil

	default:
		switch {
		case req.Preset != "" && req.Zone != "":
			return whenny.FormatPresetInTimezone(instant, req.Preset, s.cfg, req.Zone)
		case req.Preset != "":
			return whenny.FormatPreset(instant, req.Preset, s.cfg)
		case req.Zone != "":
			return whenny.FormatInTimezone(instant, req.Template, s.cfg, req.Zone)
		case req.Template != "":
			return whenny.Format(instant, req.Template, s.cfg), nil
		default:
			return instant.ISO(), nil
		}
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	code := werror.CodeOf(err)
	status := http.StatusInternalServerError
	if code != "" {
		status = code.HTTPStatus()
	}

	s.logger.Warn("request failed", log.Fields{"code": string(code), "error": err.Error()})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Code: string(code)})
}

// tickerFrame is one per-second push on /v1/ticker
type tickerFrame struct {
	ISO      string `json:"iso"`
	Clock    string `json:"clock"`
	Relative string `json:"relative"`
}

func (s *server) handleTicker(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Fields{"error": err.Error()})
		return
	}
	defer conn.Close()

	zone := r.URL.Query().Get("zone")
	s.logger.Debug("ticker client connected", log.Fields{"remote": conn.RemoteAddr().String(), "zone": zone})

	start := whenny.Now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		now := whenny.Now()

		clock := whenny.Format(now, "{time}", s.cfg)
		if zone != "" {
			projected, err := whenny.FormatInTimezone(now, "{time}", s.cfg, zone)
			if err != nil {
				s.writeTickerError(conn, err)
				return
			}
			clock = projected
		}

		frame := tickerFrame{
			ISO:      now.ISO(),
			Clock:    clock,
			Relative: whenny.Relative(start, now, s.cfg),
		}

		if err := conn.WriteJSON(frame); err != nil {
			s.logger.Debug("ticker client disconnected", log.Fields{"remote": conn.RemoteAddr().String()})
			return
		}
	}
}

func (s *server) writeTickerError(conn *websocket.Conn, err error) {
	conn.WriteJSON(errorResponse{Error: err.Error(), Code: string(werror.CodeOf(err))})
}
