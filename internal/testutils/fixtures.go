package testutils

import (
	"github.com/edelwud/pillar-validator/internal/services/pillar"
)

// ValidPillarYAML is a complete ceph-salt pillar that passes validation.
const ValidPillarYAML = `ceph-salt:
  bootstrap_minion: node1.ceph.com
  bootstrap_mon_ip: 10.20.188.201
  dashboard:
    username: admin1
    password: admin2
    password_update_required: true
  time_server:
    enabled: true
    server_host: node1.ceph.com
    external_time_servers:
      - pool.ntp.org
    subnet: 10.20.188.0/24
  minions:
    all:
      - node1.ceph.com
      - node2.ceph.com
      - node3.ceph.com
    cephadm:
      - node1.ceph.com
      - node2.ceph.com
    admin:
      - node1.ceph.com
  updates:
    enabled: true
    reboot: true
  container:
    images:
      ceph: docker.io/ceph/daemon-base:latest
`

// NewValidPillar returns a fresh pillar that passes validation.
func NewValidPillar() *pillar.MapPillar {
	p := pillar.NewMapPillar(nil)

	p.Set("ceph-salt:dashboard:username", "admin1")
	p.Set("ceph-salt:dashboard:password", "admin2")
	p.Set("ceph-salt:dashboard:password_update_required", true)
	p.Set("ceph-salt:bootstrap_minion", "node1.ceph.com")
	p.Set("ceph-salt:bootstrap_mon_ip", "10.20.188.201")
	p.Set("ceph-salt:time_server:enabled", true)
	p.Set("ceph-salt:time_server:server_host", "node1.ceph.com")
	p.Set("ceph-salt:time_server:external_time_servers", []string{"pool.ntp.org"})
	p.Set("ceph-salt:time_server:subnet", "10.20.188.0/24")
	p.Set("ceph-salt:minions:all", []string{"node1.ceph.com", "node2.ceph.com", "node3.ceph.com"})
	p.Set("ceph-salt:minions:cephadm", []string{"node1.ceph.com", "node2.ceph.com"})
	p.Set("ceph-salt:minions:admin", []string{"node1.ceph.com"})
	p.Set("ceph-salt:updates:enabled", true)
	p.Set("ceph-salt:updates:reboot", true)
	p.Set("ceph-salt:container:images:ceph", "docker.io/ceph/daemon-base:latest")

	return p
}
