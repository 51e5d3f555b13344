package wire

import "encoding/binary"

// fixed lengths for the non-repeating message shapes, payload only
// (type byte included).
const (
	lenGetEvents      = 1
	lenGetReservation = 1 + 4 + 2
	lenReservation    = 1 + 4 + 4 + 2 + CookieLength + 8
	lenGetTickets     = 1 + 4 + CookieLength
	lenBadRequest     = 1 + 4
)

// Decode inspects the leading type byte of a datagram and parses it into
// one of the typed messages. The second return value is false when the
// type byte is unrecognized or the payload length does not match the
// fixed layout for that type — spec.md requires such datagrams to be
// dropped silently, never answered, so callers must treat false as "no
// message", not an error.
func Decode(b []byte) (any, bool) {
	if len(b) == 0 {
		return nil, false
	}
	switch MessageType(b[0]) {
	case TypeGetEvents:
		return DecodeGetEvents(b)
	case TypeEvents:
		return DecodeEvents(b)
	case TypeGetReservation:
		return DecodeGetReservation(b)
	case TypeReservation:
		return DecodeReservation(b)
	case TypeGetTickets:
		return DecodeGetTickets(b)
	case TypeTickets:
		return DecodeTickets(b)
	case TypeBadRequest:
		return DecodeBadRequest(b)
	default:
		return nil, false
	}
}

// EncodeGetEvents encodes a GetEvents request.
func EncodeGetEvents(GetEvents) []byte {
	return []byte{byte(TypeGetEvents)}
}

// DecodeGetEvents decodes a GetEvents request.
func DecodeGetEvents(b []byte) (GetEvents, bool) {
	if len(b) != lenGetEvents || MessageType(b[0]) != TypeGetEvents {
		return GetEvents{}, false
	}
	return GetEvents{}, true
}

// EncodeEvents encodes an Events reply. The caller is responsible for
// having already trimmed Entries to fit MaxDatagramPayload (see
// store.Store.ListEvents); EncodeEvents does not truncate.
func EncodeEvents(m Events) []byte {
	size := 1
	for _, e := range m.Entries {
		size += 4 + 2 + 1 + len(e.Description)
	}
	b := make([]byte, size)
	b[0] = byte(TypeEvents)
	off := 1
	for _, e := range m.Entries {
		binary.BigEndian.PutUint32(b[off:], e.EventID)
		off += 4
		binary.BigEndian.PutUint16(b[off:], e.TicketCount)
		off += 2
		b[off] = byte(len(e.Description))
		off++
		copy(b[off:], e.Description)
		off += len(e.Description)
	}
	return b
}

// DecodeEvents decodes an Events reply.
func DecodeEvents(b []byte) (Events, bool) {
	if len(b) < 1 || MessageType(b[0]) != TypeEvents {
		return Events{}, false
	}
	var m Events
	off := 1
	for off < len(b) {
		if off+4+2+1 > len(b) {
			return Events{}, false
		}
		eventID := binary.BigEndian.Uint32(b[off:])
		off += 4
		ticketCount := binary.BigEndian.Uint16(b[off:])
		off += 2
		descLen := int(b[off])
		off++
		if off+descLen > len(b) {
			return Events{}, false
		}
		desc := make([]byte, descLen)
		copy(desc, b[off:off+descLen])
		off += descLen
		m.Entries = append(m.Entries, EventEntry{
			EventID:     eventID,
			TicketCount: ticketCount,
			Description: desc,
		})
	}
	return m, true
}

// EncodeGetReservation encodes a GetReservation request.
func EncodeGetReservation(m GetReservation) []byte {
	b := make([]byte, lenGetReservation)
	b[0] = byte(TypeGetReservation)
	binary.BigEndian.PutUint32(b[1:], m.EventID)
	binary.BigEndian.PutUint16(b[5:], m.TicketCount)
	return b
}

// DecodeGetReservation decodes a GetReservation request.
func DecodeGetReservation(b []byte) (GetReservation, bool) {
	if len(b) != lenGetReservation || MessageType(b[0]) != TypeGetReservation {
		return GetReservation{}, false
	}
	return GetReservation{
		EventID:     binary.BigEndian.Uint32(b[1:]),
		TicketCount: binary.BigEndian.Uint16(b[5:]),
	}, true
}

// EncodeReservation encodes a successful Reservation reply.
func EncodeReservation(m Reservation) []byte {
	b := make([]byte, lenReservation)
	b[0] = byte(TypeReservation)
	binary.BigEndian.PutUint32(b[1:], m.ReservationID)
	binary.BigEndian.PutUint32(b[5:], m.EventID)
	binary.BigEndian.PutUint16(b[9:], m.TicketCount)
	copy(b[11:11+CookieLength], m.Cookie[:])
	binary.BigEndian.PutUint64(b[11+CookieLength:], m.ExpirationTime)
	return b
}

// DecodeReservation decodes a Reservation reply.
func DecodeReservation(b []byte) (Reservation, bool) {
	if len(b) != lenReservation || MessageType(b[0]) != TypeReservation {
		return Reservation{}, false
	}
	var m Reservation
	m.ReservationID = binary.BigEndian.Uint32(b[1:])
	m.EventID = binary.BigEndian.Uint32(b[5:])
	m.TicketCount = binary.BigEndian.Uint16(b[9:])
	copy(m.Cookie[:], b[11:11+CookieLength])
	m.ExpirationTime = binary.BigEndian.Uint64(b[11+CookieLength:])
	return m, true
}

// EncodeGetTickets encodes a GetTickets request.
func EncodeGetTickets(m GetTickets) []byte {
	b := make([]byte, lenGetTickets)
	b[0] = byte(TypeGetTickets)
	binary.BigEndian.PutUint32(b[1:], m.ReservationID)
	copy(b[5:5+CookieLength], m.Cookie[:])
	return b
}

// DecodeGetTickets decodes a GetTickets request.
func DecodeGetTickets(b []byte) (GetTickets, bool) {
	if len(b) != lenGetTickets || MessageType(b[0]) != TypeGetTickets {
		return GetTickets{}, false
	}
	var m GetTickets
	m.ReservationID = binary.BigEndian.Uint32(b[1:])
	copy(m.Cookie[:], b[5:5+CookieLength])
	return m, true
}

// EncodeTickets encodes a successful Tickets reply. The number of codes
// must equal TicketCount; EncodeTickets does not verify this (the store
// guarantees it by construction).
func EncodeTickets(m Tickets) []byte {
	b := make([]byte, 1+4+2+len(m.Codes)*TicketCodeLength)
	b[0] = byte(TypeTickets)
	binary.BigEndian.PutUint32(b[1:], m.ReservationID)
	binary.BigEndian.PutUint16(b[5:], m.TicketCount)
	off := 7
	for _, code := range m.Codes {
		copy(b[off:off+TicketCodeLength], code[:])
		off += TicketCodeLength
	}
	return b
}

// DecodeTickets decodes a Tickets reply.
func DecodeTickets(b []byte) (Tickets, bool) {
	if len(b) < 1+4+2 || MessageType(b[0]) != TypeTickets {
		return Tickets{}, false
	}
	var m Tickets
	m.ReservationID = binary.BigEndian.Uint32(b[1:])
	m.TicketCount = binary.BigEndian.Uint16(b[5:])
	body := b[7:]
	if len(body) != int(m.TicketCount)*TicketCodeLength {
		return Tickets{}, false
	}
	m.Codes = make([][TicketCodeLength]byte, m.TicketCount)
	for i := range m.Codes {
		copy(m.Codes[i][:], body[i*TicketCodeLength:(i+1)*TicketCodeLength])
	}
	return m, true
}

// EncodeBadRequest encodes a BadRequest reply.
func EncodeBadRequest(m BadRequest) []byte {
	b := make([]byte, lenBadRequest)
	b[0] = byte(TypeBadRequest)
	binary.BigEndian.PutUint32(b[1:], m.ID)
	return b
}

// DecodeBadRequest decodes a BadRequest reply.
func DecodeBadRequest(b []byte) (BadRequest, bool) {
	if len(b) != lenBadRequest || MessageType(b[0]) != TypeBadRequest {
		return BadRequest{}, false
	}
	return BadRequest{ID: binary.BigEndian.Uint32(b[1:])}, true
}
