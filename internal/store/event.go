package store

// maxDatagramPayload is the largest UDP payload guaranteed to fit an
// IPv4 datagram (65,507 bytes, per spec.md §6). The store enforces the
// reply-size budget that the wire layer's encoders assume callers have
// already respected.
const maxDatagramPayload = 65507

// eventsHeaderSize is the leading type byte an Events reply costs before
// any catalog entries are written.
const eventsHeaderSize = 1

// eventEntrySize returns the encoded size, in bytes, of one catalog
// entry: 4 (event_id) + 2 (ticket_count) + 1 (desc_len) + description.
func eventEntrySize(descriptionLen int) int {
	return 4 + 2 + 1 + descriptionLen
}

// ListEvents returns, in catalog order, as many events as fit within
// maxDatagramPayload, along with the total encoded byte count of that
// prefix including the leading type byte (spec.md §4.3). It never
// mutates the catalog. Truncation when the full catalog would not fit is
// silent, per spec.md §4.1.
func (s *Store) ListEvents() ([]Event, int) {
	budget := maxDatagramPayload - eventsHeaderSize
	used := 0

	var prefix []Event
	for _, e := range s.events {
		cost := eventEntrySize(len(e.Description))
		if used+cost > budget {
			break
		}
		used += cost
		prefix = append(prefix, e)
	}
	return prefix, eventsHeaderSize + used
}
