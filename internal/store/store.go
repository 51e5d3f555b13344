// Package store implements the reservation bookkeeping state machine:
// it owns the event catalog, active reservations, the pending-expiry
// queue, and the two monotonic counters (reservation id, ticket number).
// It is the only package in this repository that mutates shared state,
// and it is written under the assumption that exactly one goroutine
// calls its methods at a time — see internal/dispatch for the caller.
package store

import (
	"crypto/rand"
	"io"

	"github.com/tixie/ticket-server/internal/ticketcode"
)

// CookieLength is the fixed size of a reservation cookie in bytes.
const CookieLength = 48

const (
	cookieRangeLow  = 33
	cookieRangeHigh = 126
	cookieRangeSize = cookieRangeHigh - cookieRangeLow + 1

	firstReservationID = 1_000_001
	firstTicketNumber  = 1

	ticketcodeLength = 7
)

// ticketCode renders a ticket number as its 7-byte printable code.
func ticketCode(n uint64) [ticketcodeLength]byte {
	return ticketcode.Generate(n)
}

// ticketsReplySize is the encoded size of the TICKETS reply a
// successful redemption of count tickets would produce: the 7-byte
// header (type, reservation_id, ticket_count) plus count 7-byte codes.
func ticketsReplySize(count uint16) int {
	return 7 + int(count)*ticketcodeLength
}

// Event is a catalog row. EventID is its position in the catalog
// supplied at startup; TicketCount is the currently available
// inventory, the only field the store ever mutates.
type Event struct {
	EventID     uint32
	Description []byte
	TicketCount uint16
}

// Reservation is the data returned to a caller on a successful
// GetReservation. It never carries FirstTicketNumber — that field is
// observable only inside the store (see reservation.go).
type Reservation struct {
	ReservationID  uint32
	EventID        uint32
	TicketCount    uint16
	Cookie         [CookieLength]byte
	ExpirationTime uint64
}

// Store owns the event catalog, the reservation map, the pending-expiry
// queue, and the two monotonic counters. It is not safe for concurrent
// use; every exported method must be called from a single goroutine.
type Store struct {
	events  []Event
	byEvent map[uint32]int // EventID -> index into events

	reservations map[uint32]*reservation
	pending      []pendingExpiry

	nextReservationID uint32
	nextTicketNumber  uint64

	timeoutSeconds uint64
	randSource     io.Reader
}

// pendingExpiry is one entry in the FIFO expiry queue. The queue holds
// only ids, never owning references — spec.md §9.
type pendingExpiry struct {
	reservationID  uint32
	expirationTime uint64
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithRandSource overrides the cookie byte source. Tests use this to get
// deterministic cookies; production code should leave it at the default
// (crypto/rand.Reader).
func WithRandSource(r io.Reader) Option {
	return func(s *Store) {
		s.randSource = r
	}
}

// New builds a Store from the startup catalog. timeoutSeconds is the
// server-global reservation hold duration (spec.md §3: the pending-expiry
// queue relies on this being a single constant shared by every
// reservation).
func New(events []Event, timeoutSeconds uint64, opts ...Option) *Store {
	byEvent := make(map[uint32]int, len(events))
	for i, e := range events {
		byEvent[e.EventID] = i
	}

	s := &Store{
		events:            events,
		byEvent:           byEvent,
		reservations:      make(map[uint32]*reservation),
		nextReservationID: firstReservationID,
		nextTicketNumber:  firstTicketNumber,
		timeoutSeconds:    timeoutSeconds,
		randSource:        rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
