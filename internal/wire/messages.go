// Package wire implements the packed binary request/reply protocol the
// ticket server speaks over a single UDP socket. Every message is a
// fixed layout of big-endian integers and raw bytes; there is no
// alignment padding and no variable-length framing beyond the counts
// each message carries inline.
package wire

// MessageType is the leading byte of every datagram, identifying which
// of the seven layouts follows.
type MessageType byte

const (
	TypeGetEvents      MessageType = 1
	TypeEvents         MessageType = 2
	TypeGetReservation MessageType = 3
	TypeReservation    MessageType = 4
	TypeGetTickets     MessageType = 5
	TypeTickets        MessageType = 6
	TypeBadRequest     MessageType = 255
)

// MaxDatagramPayload is the largest UDP payload that is guaranteed to fit
// an IPv4 datagram (65,535 byte IP payload minus the 8-byte UDP header
// minus the minimum 20-byte IPv4 header gives 65,507).
const MaxDatagramPayload = 65507

// CookieLength is the fixed size of a reservation cookie in bytes.
const CookieLength = 48

// TicketCodeLength is the fixed size of a printable ticket code.
const TicketCodeLength = 7

// MaxDescriptionLength is the largest description an Event may carry;
// the wire format encodes the length in a single byte.
const MaxDescriptionLength = 255

// GetEvents requests the full (possibly truncated) event catalog.
// Wire layout: b(type=1). No further fields.
type GetEvents struct{}

// EventEntry is one catalog row inside an Events reply.
type EventEntry struct {
	EventID     uint32
	TicketCount uint16
	Description []byte
}

// Events lists the catalog, in id order, as far as it fits within
// MaxDatagramPayload.
// Wire layout: b(type=2) then, per entry: l event_id, h ticket_count,
// b desc_len, desc_len×b description.
type Events struct {
	Entries []EventEntry
}

// GetReservation requests a hold on count tickets for an event.
// Wire layout: b(type=3) l event_id h ticket_count — 7 bytes total.
type GetReservation struct {
	EventID     uint32
	TicketCount uint16
}

// Reservation is the successful reply to GetReservation.
// Wire layout: b(type=4) l reservation_id l event_id h ticket_count
// 48×b cookie q expiration_time — 67 bytes total.
type Reservation struct {
	ReservationID  uint32
	EventID        uint32
	TicketCount    uint16
	Cookie         [CookieLength]byte
	ExpirationTime uint64
}

// GetTickets redeems a reservation, proving ownership with its cookie.
// Wire layout: b(type=5) l reservation_id 48×b cookie — 53 bytes total.
type GetTickets struct {
	ReservationID uint32
	Cookie        [CookieLength]byte
}

// Tickets is the successful reply to GetTickets, carrying exactly
// TicketCount fixed-width printable codes.
// Wire layout: b(type=6) l reservation_id h ticket_count
// ticket_count × (7×b ticket_code).
type Tickets struct {
	ReservationID uint32
	TicketCount   uint16
	Codes         [][TicketCodeLength]byte
}

// BadRequest is the protocol-visible failure reply, echoing whichever id
// the offending request named (an event id or a reservation id).
// Wire layout: b(type=255) l id — 5 bytes total.
type BadRequest struct {
	ID uint32
}
