// Package ticketcode projects a 64-bit ticket number into a fixed-width
// base-36 printable code.
package ticketcode

const (
	base   = 36
	length = 7
)

// Generate maps ticketNumber to a 7-byte ASCII code. Digits are emitted
// least-significant first and written right-to-left into the buffer, so
// the result is zero-padded on the left: 0 produces "0000000", and
// anything that exhausts before 7 digits is padded with leading '0'.
func Generate(ticketNumber uint64) [length]byte {
	var code [length]byte
	for i := 0; i < length; i++ {
		code[i] = '0'
	}

	n := ticketNumber
	for i := length - 1; i >= 0 && n > 0; i-- {
		digit := n % base
		n /= base
		if digit < 10 {
			code[i] = byte('0' + digit)
		} else {
			code[i] = byte('A' + digit - 10)
		}
	}

	return code
}
