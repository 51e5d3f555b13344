package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tixie/ticket-server/internal/config"
	"github.com/tixie/ticket-server/internal/store"
	"github.com/tixie/ticket-server/internal/wire"
)

// TestServeOverRealUDPSocket is an end-to-end check that the dispatcher
// actually speaks the wire protocol over a real loopback UDP socket, not
// just over the in-memory fakes used by internal/dispatch's own tests.
func TestServeOverRealUDPSocket(t *testing.T) {
	events := []store.Event{{EventID: 0, Description: []byte("Concert A"), TicketCount: 5}}
	cfg := config.Config{Port: 0, Timeout: 5}

	conn, d, err := listen(cfg, events)
	require.NoError(t, err)
	defer conn.Close()

	go d.Run(conn)

	client, err := net.Dial("udp", conn.LocalAddr().String())
	require.NoError(t, err)
	defer client.Close()
	client.SetDeadline(time.Now().Add(2 * time.Second))

	_, err = client.Write(wire.EncodeGetEvents(wire.GetEvents{}))
	require.NoError(t, err)

	buf := make([]byte, wire.MaxDatagramPayload)
	n, err := client.Read(buf)
	require.NoError(t, err)

	decoded, ok := wire.DecodeEvents(buf[:n])
	require.True(t, ok)
	require.Len(t, decoded.Entries, 1)
	require.Equal(t, "Concert A", string(decoded.Entries[0].Description))
}
