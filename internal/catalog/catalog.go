// Package catalog ingests the startup event catalog file into the
// ordered list of events the reservation store is built from. The file
// format is line-oriented: pairs of lines, "description\nticket_count\n",
// zero-indexed into event_id (spec.md §6).
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tixie/ticket-server/internal/store"
)

// maxDescriptionLength mirrors wire.MaxDescriptionLength: the wire
// format encodes a description's length in a single byte, so anything
// longer can never be carried and is rejected at ingestion time rather
// than deferred to a request that could never succeed (spec.md §9 Open
// Question).
const maxDescriptionLength = 255

// LoadFile reads the catalog file at path and returns its events in
// file order. Any I/O or formatting problem is a startup error.
func LoadFile(path string) ([]store.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	events, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return events, nil
}

// Load reads a catalog from r. It is split out from LoadFile so tests
// can exercise the parsing logic without touching the filesystem.
func Load(r io.Reader) ([]store.Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var events []store.Event
	for {
		description, ok, err := readLine(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if len(description) > maxDescriptionLength {
			return nil, fmt.Errorf("event %d: description is %d bytes, exceeds %d", len(events), len(description), maxDescriptionLength)
		}

		countLine, ok, err := readLine(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("event %d: missing ticket_count line", len(events))
		}

		count, err := strconv.ParseUint(countLine, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("event %d: invalid ticket_count %q: %w", len(events), countLine, err)
		}

		events = append(events, store.Event{
			EventID:     uint32(len(events)),
			Description: []byte(description),
			TicketCount: uint16(count),
		})
	}

	return events, nil
}

func readLine(scanner *bufio.Scanner) (string, bool, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return scanner.Text(), true, nil
}
