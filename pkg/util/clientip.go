package util

import (
	"net"
	"strings"
)

// ClientIP picks the visitor address: the first X-Forwarded-For entry when
// the header is present, otherwise the peer address without its port.
func ClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
