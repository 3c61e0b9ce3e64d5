// Package netutils provides common utility functions for network operations.
package netutils

import (
	"net"
	"strings"
)

// IsLoopbackIP reports whether addr is a loopback address (127.0.0.0/8
// or ::1). Zone suffixes and surrounding brackets are accepted.
// Hostnames such as "localhost" are not resolved.
func IsLoopbackIP(addr string) bool {
	addr = strings.TrimSpace(addr)
	addr = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	if i := strings.IndexByte(addr, '%'); i >= 0 {
		addr = addr[:i]
	}

	ip := net.ParseIP(addr)
	return ip != nil && ip.IsLoopback()
}

// SplitHostList splits a comma or whitespace separated list of hostnames,
// dropping empty entries and duplicates while keeping order.
func SplitHostList(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	seen := make(map[string]struct{}, len(fields))
	hosts := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		hosts = append(hosts, field)
	}

	return hosts
}
