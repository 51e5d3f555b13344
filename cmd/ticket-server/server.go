package main

import (
	"net"
	"strconv"

	"github.com/tixie/ticket-server/internal/config"
	"github.com/tixie/ticket-server/internal/dispatch"
	"github.com/tixie/ticket-server/internal/store"
)

// listen binds the configured UDP port and wires a fresh Store and
// Dispatcher over it. Split out from run so tests can bind an ephemeral
// port (cfg.Port == 0) and drive the resulting connection directly.
func listen(cfg config.Config, events []store.Event) (net.PacketConn, *dispatch.Dispatcher, error) {
	conn, err := net.ListenPacket("udp", net.JoinHostPort("", strconv.Itoa(int(cfg.Port))))
	if err != nil {
		return nil, nil, err
	}

	st := store.New(events, uint64(cfg.Timeout))
	d := dispatch.New(st, wallClockSeconds, nil)
	return conn, d, nil
}
