package validation

import (
	"strings"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// key joins segments under the pillar root.
func key(segments ...string) string {
	return domain.PillarRoot + domain.PillarKeySeparator + strings.Join(segments, domain.PillarKeySeparator)
}

// Pillar keys read by the validator.
var (
	KeyBootstrapMinion        = key("bootstrap_minion")
	KeyBootstrapMonIP         = key("bootstrap_mon_ip")
	KeyDashboardUsername      = key("dashboard", "username")
	KeyDashboardPassword      = key("dashboard", "password")
	KeyDashboardPasswordReset = key("dashboard", "password_update_required")
	KeyUpdatesEnabled         = key("updates", "enabled")
	KeyUpdatesReboot          = key("updates", "reboot")
	KeyTimeServerEnabled      = key("time_server", "enabled")
	KeyTimeServerHost         = key("time_server", "server_host")
	KeyTimeServerSubnet       = key("time_server", "subnet")
	KeyExternalTimeServers    = key("time_server", "external_time_servers")
	KeyMinionsAll             = key("minions", "all")
	KeyMinionsCephadm         = key("minions", "cephadm")
	KeyMinionsAdmin           = key("minions", "admin")
	KeyCephContainerImage     = ContainerImageKey("ceph")
)

// ContainerImageKey returns the container image key for a service.
func ContainerImageKey(service string) string {
	return key("container", "images", service)
}
