// Package dispatch implements the top-level request loop: for each
// inbound datagram it samples the arrival time, sweeps expired
// reservations, classifies the message, and emits either the positive
// reply or a BAD_REQUEST echoing the offending id (spec.md §4.4).
package dispatch

import (
	"errors"
	"log"
	"net"

	"github.com/tixie/ticket-server/internal/store"
	"github.com/tixie/ticket-server/internal/wire"
)

// Clock returns the current time as seconds since an arbitrary epoch.
// The protocol only ever compares this value to itself (expiration_time
// = now + timeout), so wall-clock or monotonic seconds are both
// acceptable (spec.md §4.4).
type Clock func() uint64

// Dispatcher wires a Store to the wire protocol. It holds no connection
// state of its own; Run supplies that.
type Dispatcher struct {
	store  *store.Store
	now    Clock
	logger *log.Logger
}

// New builds a Dispatcher over store, using now to sample arrival time
// and logger for diagnostics. A nil logger falls back to the standard
// library's default logger, matching the teacher's services.
func New(st *store.Store, now Clock, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{store: st, now: now, logger: logger}
}

// HandleDatagram processes one inbound payload and returns the bytes to
// send back, if any. It always sweeps expired reservations first
// (spec.md §5: every request triggers a sweep before its own logic
// runs), then decodes and classifies the payload. A malformed datagram
// (unknown type byte, wrong length) yields ok=false: spec.md requires
// these to be dropped silently, never answered. A Reserve failure other
// than store.ErrBadRequest is logged and also yields ok=false.
func (d *Dispatcher) HandleDatagram(payload []byte) (reply []byte, ok bool) {
	now := d.now()
	d.store.SweepExpired(now)

	msg, decoded := wire.Decode(payload)
	if !decoded {
		return nil, false
	}

	switch req := msg.(type) {
	case wire.GetEvents:
		return d.handleGetEvents(), true

	case wire.GetReservation:
		return d.handleGetReservation(req, now)

	case wire.GetTickets:
		return d.handleGetTickets(req), true

	default:
		// A well-formed reply-shaped datagram (EVENTS, RESERVATION,
		// TICKETS, BAD_REQUEST) arriving as a request is not one of the
		// three inbound message types the server accepts; drop it.
		return nil, false
	}
}

func (d *Dispatcher) handleGetEvents() []byte {
	prefix, _ := d.store.ListEvents()
	entries := make([]wire.EventEntry, len(prefix))
	for i, e := range prefix {
		entries[i] = wire.EventEntry{
			EventID:     e.EventID,
			TicketCount: e.TicketCount,
			Description: e.Description,
		}
	}
	return wire.EncodeEvents(wire.Events{Entries: entries})
}

func (d *Dispatcher) handleGetReservation(req wire.GetReservation, now uint64) ([]byte, bool) {
	rsv, err := d.store.Reserve(req.EventID, req.TicketCount, now)
	if errors.Is(err, store.ErrBadRequest) {
		return wire.EncodeBadRequest(wire.BadRequest{ID: req.EventID}), true
	}
	if err != nil {
		d.logger.Printf("ticket-server: reserve for event %d failed: %v", req.EventID, err)
		return nil, false
	}
	return wire.EncodeReservation(wire.Reservation{
		ReservationID:  rsv.ReservationID,
		EventID:        rsv.EventID,
		TicketCount:    rsv.TicketCount,
		Cookie:         rsv.Cookie,
		ExpirationTime: rsv.ExpirationTime,
	}), true
}

func (d *Dispatcher) handleGetTickets(req wire.GetTickets) []byte {
	codes, err := d.store.Redeem(req.ReservationID, req.Cookie)
	if err != nil {
		return wire.EncodeBadRequest(wire.BadRequest{ID: req.ReservationID})
	}
	return wire.EncodeTickets(wire.Tickets{
		ReservationID: req.ReservationID,
		TicketCount:   uint16(len(codes)),
		Codes:         codes,
	})
}

// packetConn is the subset of net.PacketConn the loop needs. Defined as
// an interface so tests can substitute an in-memory fake instead of
// binding a real socket.
type packetConn interface {
	ReadFrom(p []byte) (n int, addr net.Addr, err error)
	WriteTo(p []byte, addr net.Addr) (n int, err error)
}

// Run blocks forever, servicing one datagram at a time on conn. It
// returns only when ReadFrom fails, which spec.md §6 treats as a fatal
// I/O error the caller should exit on.
func (d *Dispatcher) Run(conn net.PacketConn) error {
	return d.run(conn)
}

func (d *Dispatcher) run(conn packetConn) error {
	buf := make([]byte, wire.MaxDatagramPayload)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			return err
		}

		reply, ok := d.HandleDatagram(buf[:n])
		if !ok {
			continue
		}

		if _, err := conn.WriteTo(reply, addr); err != nil {
			d.logger.Printf("ticket-server: write to %s failed: %v", addr, err)
		}
	}
}
