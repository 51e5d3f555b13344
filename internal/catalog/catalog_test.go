package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario1(t *testing.T) {
	r := strings.NewReader("Concert A\n100\nShow B\n50\n")
	events, err := Load(r)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, uint32(0), events[0].EventID)
	assert.Equal(t, "Concert A", string(events[0].Description))
	assert.Equal(t, uint16(100), events[0].TicketCount)

	assert.Equal(t, uint32(1), events[1].EventID)
	assert.Equal(t, "Show B", string(events[1].Description))
	assert.Equal(t, uint16(50), events[1].TicketCount)
}

func TestLoadEmptyCatalog(t *testing.T) {
	events, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLoadRejectsOversizeDescription(t *testing.T) {
	desc := strings.Repeat("x", 256)
	_, err := Load(strings.NewReader(desc + "\n10\n"))
	assert.Error(t, err)
}

func TestLoadAcceptsMaxSizeDescription(t *testing.T) {
	desc := strings.Repeat("x", 255)
	events, err := Load(strings.NewReader(desc + "\n10\n"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Len(t, events[0].Description, 255)
}

func TestLoadRejectsMissingTicketCountLine(t *testing.T) {
	_, err := Load(strings.NewReader("Concert A\n"))
	assert.Error(t, err)
}

func TestLoadRejectsNonNumericTicketCount(t *testing.T) {
	_, err := Load(strings.NewReader("Concert A\nmany\n"))
	assert.Error(t, err)
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/catalog.txt")
	assert.Error(t, err)
}
