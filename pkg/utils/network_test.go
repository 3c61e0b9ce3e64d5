package netutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	netutils "github.com/edelwud/pillar-validator/pkg/utils"
)

func TestIsLoopbackIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		addr     string
		loopback bool
	}{
		{name: "ipv4_loopback", addr: "127.0.0.1", loopback: true},
		{name: "ipv4_loopback_range", addr: "127.0.1.1", loopback: true},
		{name: "ipv6_loopback", addr: "::1", loopback: true},
		{name: "ipv6_loopback_bracketed", addr: "[::1]", loopback: true},
		{name: "ipv6_loopback_zone", addr: "::1%lo", loopback: true},
		{name: "padded", addr: " 127.0.0.1 ", loopback: true},
		{name: "private_ipv4", addr: "10.20.188.201", loopback: false},
		{name: "unspecified", addr: "0.0.0.0", loopback: false},
		{name: "hostname_not_resolved", addr: "localhost", loopback: false},
		{name: "empty", addr: "", loopback: false},
		{name: "garbage", addr: "not-an-ip", loopback: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.loopback, netutils.IsLoopbackIP(tt.addr))
		})
	}
}

func TestSplitHostList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		list     string
		expected []string
	}{
		{name: "empty", list: "", expected: []string{}},
		{name: "single", list: "node1.ceph.com", expected: []string{"node1.ceph.com"}},
		{name: "comma_separated", list: "node1,node2", expected: []string{"node1", "node2"}},
		{name: "mixed_separators", list: "node1, node2\tnode3\n", expected: []string{"node1", "node2", "node3"}},
		{name: "duplicates_dropped", list: "node1,node2,node1", expected: []string{"node1", "node2"}},
		{name: "empty_entries_dropped", list: ",,node1,,", expected: []string{"node1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, netutils.SplitHostList(tt.list))
		})
	}
}
