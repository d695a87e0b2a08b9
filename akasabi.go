package akasabi

import (
	"fmt"
	"log"
	"net"

	"github.com/indigo-web/akasabi/config"
	"github.com/indigo-web/akasabi/http"
	"github.com/indigo-web/akasabi/internal/address"
	"github.com/indigo-web/akasabi/internal/protocol/http1"
	"github.com/indigo-web/akasabi/transport"
)

// Logger receives protocol and transport errors of served connections. Both *log.Logger
// and *zerolog.Logger satisfy it.
type Logger = http1.Logger

// App binds to a single address and serves every accepted connection with the handler.
type App struct {
	addr      string
	cfg       *config.Config
	logger    Logger
	onStart   func()
	transport *transport.TCP
}

// New returns a new App instance. An address consisting of a port only is bound to all
// interfaces.
func New(addr string) *App {
	return &App{
		addr:      address.Normalize(addr),
		cfg:       config.Default(),
		logger:    log.Default(),
		transport: transport.NewTCP(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, which is log.Default().
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment the address is bound, right before the
// first connection is accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Addr returns the bound address, or nil if the app isn't started yet.
func (a *App) Addr() net.Addr {
	return a.transport.Addr()
}

// Serve starts the application and blocks until Stop is called and all the connections are
// served. If nil handler is passed, every request is responded with an empty 200 OK.
func (a *App) Serve(handler http.Handler) error {
	if handler == nil {
		handler = http.Respond
	}

	if err := a.transport.Bind(a.addr); err != nil {
		return fmt.Errorf("akasabi: bind %s: %w", a.addr, err)
	}

	if a.onStart != nil {
		a.onStart()
	}

	err := a.transport.Listen(a.cfg.NET, func(conn net.Conn) {
		http1.New(a.cfg, handler, conn, a.logger).Serve()
	})

	a.transport.Close()
	a.transport.Wait()

	if err != nil {
		return fmt.Errorf("akasabi: listen: %w", err)
	}

	return nil
}

// Stop makes the application stop accepting new connections. Serve returns as soon as the
// already accepted ones are served.
func (a *App) Stop() {
	a.transport.Stop()
}
