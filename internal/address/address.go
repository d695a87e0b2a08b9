package address

const DefaultHost = "0.0.0.0"

// Normalize prepends the default host if only the port is given.
func Normalize(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return DefaultHost + addr
	}

	return addr
}
