package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/input"
	lg "github.com/tomz197/spacedodge/internal/logging"
	"github.com/tomz197/spacedodge/internal/loop"
)

type sshConfig struct {
	Host        string        `env:"SSH_HOST"         envDefault:"::"`
	Port        string        `env:"SSH_PORT"         envDefault:"2222"`
	HostKeyPath string        `env:"SSH_HOST_KEY"     envDefault:"/app/keys/host_key"`
	IdleTimeout time.Duration `env:"SSH_IDLE_TIMEOUT" envDefault:"5m"`
	KeyHold     time.Duration `env:"SPACEDODGE_KEY_HOLD" envDefault:"120ms"`
	LogLevel    string        `env:"LOG_LEVEL"        envDefault:"info"`
}

func main() {
	var sc sshConfig
	if err := config.ParseEnv(&sc); err != nil {
		lg.New("ssh", "error").Fatal("load config", "err", err)
	}
	logger := lg.New("ssh", sc.LogLevel)

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Fatal("load game config", "err", err)
	}
	opts, err := loop.LoadOptions()
	if err != nil {
		logger.Fatal("load loop options", "err", err)
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = sc.IdleTimeout
	}

	logger.Info("ssh config", "host", sc.Host, "port", sc.Port, "hostKeyPath", sc.HostKeyPath, "idleTimeout", sc.IdleTimeout)

	// Cancelled on shutdown so that every running game ends.
	serverCtx, stopGames := context.WithCancel(context.Background())
	defer stopGames()

	h := &handler{
		ctx:     serverCtx,
		cfg:     cfg,
		opts:    opts,
		keyHold: sc.KeyHold,
		logger:  logger,
	}

	sshOpts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(sc.Host, sc.Port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if sc.HostKeyPath != "" {
		sshOpts = append(sshOpts, wish.WithHostKeyPath(sc.HostKeyPath))
	}

	s, err := wish.NewServer(sshOpts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(sc.Host, sc.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "sessions", h.active())

	stopGames()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	ctx     context.Context
	cfg     game.Config
	opts    loop.Options
	keyHold time.Duration
	logger  *log.Logger

	mu       sync.Mutex
	sessions int
}

func (h *handler) active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions
}

func (h *handler) track(delta int) {
	h.mu.Lock()
	h.sessions += delta
	h.mu.Unlock()
}

// middleware plays a game on the session's PTY until the player quits,
// disconnects, idles out or the server shuts down.
func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		h.track(1)
		defer h.track(-1)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		opts := h.opts
		opts.Logger = logger

		screen := draw.NewTerminal(sess, sizeTracker.getSize, h.cfg.Width, h.cfg.Height)
		screen.Open()

		g := game.New(h.cfg)
		err := loop.Run(ctx, g, input.StartStream(sess, h.keyHold), screen, loop.NewFrameTicker(opts.FPS), opts)

		screen.Close()
		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected after inactivity.")
		case h.ctx.Err() != nil:
			fmt.Fprintln(sess, "Server is shutting down. Thanks for playing!")
		case err != nil:
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended", "score", g.Score())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
