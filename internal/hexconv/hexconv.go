package hexconv

// Halfbyte maps an ASCII hex digit into its value. Any other byte maps into 0xFF, so a
// pair of digits can be validated at once by checking (a|b) <= 0x0F.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = byte(c - '0')
	}

	for c := 'a'; c <= 'f'; c++ {
		table[c] = byte(c-'a') + 10
		table[c-'a'+'A'] = byte(c-'a') + 10
	}

	return table
}()

// Upper contains uppercase hex digits, indexed by their value.
const Upper = "0123456789ABCDEF"
