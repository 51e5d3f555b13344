// Command ticket-server runs the single-host ticket reservation daemon:
// it loads the startup event catalog, binds a UDP socket, and services
// requests forever until a fatal socket error or a termination signal.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tixie/ticket-server/internal/catalog"
	"github.com/tixie/ticket-server/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("ticket-server: %v", err)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	events, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	log.Printf("ticket-server: loaded %d events from %s", len(events), cfg.File)
	for _, e := range events {
		log.Printf("ticket-server: event %d: %q, ticket_count=%d", e.EventID, e.Description, e.TicketCount)
	}

	conn, d, err := listen(cfg, events)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer conn.Close()
	log.Printf("ticket-server: listening on %s, timeout=%ds", conn.LocalAddr(), cfg.Timeout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.Run(conn)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		log.Printf("ticket-server: received %s, shutting down", sig)
		return nil
	}
}
