package main

import (
	_ "embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/logging"
)

type webConfig struct {
	Host     string `env:"WEB_HOST"         envDefault:"0.0.0.0"`
	Port     string `env:"WEB_PORT"         envDefault:"8080"`
	SSHHost  string `env:"SSH_DISPLAY_HOST" envDefault:"your-server.com"`
	SSHPort  string `env:"SSH_DISPLAY_PORT" envDefault:"2222"`
	LogLevel string `env:"LOG_LEVEL"        envDefault:"info"`
}

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost string
	SSHPort string
}

func newHandler(data pageData) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = pageTemplate.Execute(w, data)
	})
	return mux
}

func main() {
	var wc webConfig
	if err := config.ParseEnv(&wc); err != nil {
		logging.New("web", "error").Fatal("load config", "err", err)
	}
	logger := logging.New("web", wc.LogLevel)

	srv := &http.Server{
		Addr:              net.JoinHostPort(wc.Host, wc.Port),
		Handler:           newHandler(pageData{SSHHost: wc.SSHHost, SSHPort: wc.SSHPort}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
