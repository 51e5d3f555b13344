package ticketcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateZero(t *testing.T) {
	code := Generate(0)
	assert.Equal(t, "0000000", string(code[:]))
}

func TestGenerateSequence(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1, "0000001"},
		{2, "0000002"},
		{3, "0000003"},
		{35, "000000Z"},
		{36, "0000010"},
	}
	for _, c := range cases {
		code := Generate(c.n)
		assert.Equal(t, c.want, string(code[:]), "n=%d", c.n)
	}
}

func TestGenerateMatchesAlphabet(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-Z]{7}$`)
	for _, n := range []uint64{0, 1, 35, 36, 1295, 78364164095, 1 << 40} {
		code := Generate(n)
		assert.Regexp(t, re, string(code[:]))
	}
}

func TestGenerateDistinctForDistinctInputs(t *testing.T) {
	seen := make(map[string]uint64)
	for n := uint64(0); n < 10000; n++ {
		arr := Generate(n)
		code := string(arr[:])
		if prev, ok := seen[code]; ok {
			t.Fatalf("collision: %d and %d both produced %q", prev, n, code)
		}
		seen[code] = n
	}
}
