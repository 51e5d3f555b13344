package store

import "errors"

// ErrBadRequest is returned by Reserve and Redeem for every
// protocol-visible failure condition in spec.md §4.3 / §7. It is never
// wrapped with details beyond what the caller already knows (the event
// id or reservation id it supplied) because the wire layer's BAD_REQUEST
// reply carries no payload besides that id.
var ErrBadRequest = errors.New("bad request")

// reservation is the store's internal record. firstTicketNumber == 0 is
// the sentinel for "not yet redeemed" (spec.md §3, §9); it is never
// exposed outside this package.
type reservation struct {
	reservationID     uint32
	eventID           uint32
	ticketCount       uint16
	cookie            [CookieLength]byte
	expirationTime    uint64
	firstTicketNumber uint64
}

// Reserve allocates a hold on count tickets for eventID, valid until
// now+timeout. It fails with ErrBadRequest when count is zero, the
// resulting TICKETS reply would not fit a datagram, eventID is not in
// the catalog, or the event does not have count tickets available
// (spec.md §4.3).
func (s *Store) Reserve(eventID uint32, count uint16, now uint64) (Reservation, error) {
	if count == 0 {
		return Reservation{}, ErrBadRequest
	}
	if ticketsReplySize(count) > maxDatagramPayload {
		return Reservation{}, ErrBadRequest
	}

	idx, ok := s.byEvent[eventID]
	if !ok {
		return Reservation{}, ErrBadRequest
	}
	if s.events[idx].TicketCount < count {
		return Reservation{}, ErrBadRequest
	}

	cookie, err := s.newCookie()
	if err != nil {
		// crypto/rand failing is a programming/environment error, not a
		// protocol condition; there is no wire shape for it. Propagate
		// as-is so the dispatcher can decide (log and drop, in practice).
		return Reservation{}, err
	}

	s.events[idx].TicketCount -= count

	id := s.nextReservationID
	s.nextReservationID++

	expiresAt := now + s.timeoutSeconds

	rsv := &reservation{
		reservationID:  id,
		eventID:        eventID,
		ticketCount:    count,
		cookie:         cookie,
		expirationTime: expiresAt,
	}
	s.reservations[id] = rsv
	s.pending = append(s.pending, pendingExpiry{reservationID: id, expirationTime: expiresAt})

	return Reservation{
		ReservationID:  id,
		EventID:        eventID,
		TicketCount:    count,
		Cookie:         cookie,
		ExpirationTime: expiresAt,
	}, nil
}

// Redeem converts a reservation into its ticket codes, proving ownership
// with cookie. It fails with ErrBadRequest when reservationID names no
// live reservation (never issued, or already swept away as expired) or
// the cookie does not match byte-for-byte. Redemption is idempotent:
// once collected, the same call at any later time returns the identical
// codes (spec.md §4.3).
func (s *Store) Redeem(reservationID uint32, cookie [CookieLength]byte) ([][ticketcodeLength]byte, error) {
	rsv, ok := s.reservations[reservationID]
	if !ok {
		return nil, ErrBadRequest
	}
	if rsv.cookie != cookie {
		return nil, ErrBadRequest
	}

	if rsv.firstTicketNumber == 0 {
		rsv.firstTicketNumber = s.nextTicketNumber
		s.nextTicketNumber += uint64(rsv.ticketCount)
	}

	codes := make([][ticketcodeLength]byte, rsv.ticketCount)
	for i := range codes {
		codes[i] = ticketCode(rsv.firstTicketNumber + uint64(i))
	}
	return codes, nil
}

// SweepExpired dequeues every pending-expiry entry whose expiration_time
// is at most now, in FIFO order, stopping at the first entry still in
// the future (valid because every entry shares the same additive
// timeout offset — spec.md §3/§9). A collected reservation's entry is
// discarded without touching the reservation itself; an uncollected
// reservation's tickets are refunded to its event and the reservation is
// erased.
func (s *Store) SweepExpired(now uint64) {
	i := 0
	for ; i < len(s.pending); i++ {
		entry := s.pending[i]
		if entry.expirationTime > now {
			break
		}

		rsv, ok := s.reservations[entry.reservationID]
		if !ok {
			// Already erased (shouldn't happen twice for the same id,
			// but tolerate it rather than panic).
			continue
		}
		if rsv.firstTicketNumber != 0 {
			// Collected: drop only the queue entry.
			continue
		}

		if idx, ok := s.byEvent[rsv.eventID]; ok {
			s.events[idx].TicketCount += rsv.ticketCount
		}
		delete(s.reservations, entry.reservationID)
	}
	s.pending = s.pending[i:]
}

// newCookie draws CookieLength bytes uniformly from [33, 126].
func (s *Store) newCookie() ([CookieLength]byte, error) {
	var cookie [CookieLength]byte
	// Raw bytes at or above the largest multiple of cookieRangeSize are
	// discarded, so every value in the range is equally likely.
	const limit = 256 - 256%cookieRangeSize
	raw := make([]byte, CookieLength)
	for n := 0; n < CookieLength; {
		if _, err := s.randSource.Read(raw); err != nil {
			return cookie, err
		}
		for _, b := range raw {
			if int(b) >= limit || n == CookieLength {
				continue
			}
			cookie[n] = byte(cookieRangeLow + int(b)%cookieRangeSize)
			n++
		}
	}
	return cookie, nil
}
