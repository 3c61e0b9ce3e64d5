// Package validation checks a ceph-salt pillar before deployment.
package validation

import (
	"slices"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/services/pillar"
	netutils "github.com/edelwud/pillar-validator/pkg/utils"
)

// ValidateConfig checks the pillar and returns the first violated rule
// as a *domain.ValidationError, or nil when the pillar is valid.
//
// deployed lists the hosts already managed by the orchestrator. When it
// is empty the cluster has not been bootstrapped yet and the bootstrap
// and dashboard settings are checked too.
//
// The check order is part of the contract: callers rely on getting the
// same message for the same pillar.
func ValidateConfig(p domain.Pillar, deployed []domain.Node) error {
	allMinions := pillar.GetStringSlice(p, KeyMinionsAll)
	adminMinions := pillar.GetStringSlice(p, KeyMinionsAdmin)
	cephadmMinions := pillar.GetStringSlice(p, KeyMinionsCephadm)

	checks := make([]func() *domain.ValidationError, 0, 5)
	if len(deployed) == 0 {
		checks = append(checks,
			func() *domain.ValidationError { return checkBootstrap(p, adminMinions) },
			func() *domain.ValidationError { return checkDashboard(p) },
		)
	}
	checks = append(checks,
		func() *domain.ValidationError { return checkUpdates(p) },
		func() *domain.ValidationError { return checkTimeServer(p, allMinions) },
		func() *domain.ValidationError { return checkRoles(allMinions, cephadmMinions, adminMinions) },
		func() *domain.ValidationError { return checkContainerImages(p) },
	)

	for _, check := range checks {
		if verr := check(); verr != nil {
			return verr
		}
	}

	return nil
}

func checkBootstrap(p domain.Pillar, adminMinions []string) *domain.ValidationError {
	if !pillar.IsSet(p, KeyBootstrapMinion) {
		return domain.NewMissingValueError(KeyBootstrapMinion, "bootstrap minion")
	}

	bootstrapMinion := pillar.GetString(p, KeyBootstrapMinion)
	if !slices.Contains(adminMinions, bootstrapMinion) {
		return domain.NewBootstrapNotAdminError(KeyMinionsAdmin, bootstrapMinion)
	}

	if !pillar.IsSet(p, KeyBootstrapMonIP) {
		return domain.NewMissingValueError(KeyBootstrapMonIP, "bootstrap Mon IP")
	}

	if netutils.IsLoopbackIP(pillar.GetString(p, KeyBootstrapMonIP)) {
		return domain.NewLoopbackError(KeyBootstrapMonIP)
	}

	return nil
}

func checkDashboard(p domain.Pillar) *domain.ValidationError {
	if !pillar.IsSet(p, KeyDashboardUsername) {
		return domain.NewMissingValueError(KeyDashboardUsername, "dashboard username")
	}

	if !pillar.IsSet(p, KeyDashboardPassword) {
		return domain.NewMissingValueError(KeyDashboardPassword, "dashboard password")
	}

	return requireBool(p, KeyDashboardPasswordReset)
}

func checkUpdates(p domain.Pillar) *domain.ValidationError {
	if verr := requireBool(p, KeyUpdatesEnabled); verr != nil {
		return verr
	}

	return requireBool(p, KeyUpdatesReboot)
}

// checkTimeServer validates the time sync settings. Subnet and external
// servers only apply when the time server runs on a minion; for an
// outside host they are reported as having no effect.
func checkTimeServer(p domain.Pillar, allMinions []string) *domain.ValidationError {
	if verr := requireBool(p, KeyTimeServerEnabled); verr != nil {
		return verr
	}

	if enabled, _ := pillar.GetBool(p, KeyTimeServerEnabled); !enabled {
		return nil
	}

	if !pillar.IsSet(p, KeyTimeServerHost) {
		return domain.NewMissingValueError(KeyTimeServerHost, "time server host")
	}

	isMinion := slices.Contains(allMinions, pillar.GetString(p, KeyTimeServerHost))

	subnetSet := pillar.IsSet(p, KeyTimeServerSubnet)
	switch {
	case isMinion && !subnetSet:
		return domain.NewMissingValueError(KeyTimeServerSubnet, "time server subnet")
	case !isMinion && subnetSet:
		return domain.NewTimeServerNotMinionError(KeyTimeServerSubnet, "time server subnet")
	}

	externalSet := pillar.IsSet(p, KeyExternalTimeServers)
	switch {
	case isMinion && !externalSet:
		return domain.NewMissingValueError(KeyExternalTimeServers, "external time servers")
	case !isMinion && externalSet:
		return domain.NewTimeServerNotMinionError(KeyExternalTimeServers, "external time servers")
	}

	return nil
}

func checkRoles(allMinions, cephadmMinions, adminMinions []string) *domain.ValidationError {
	for _, minion := range cephadmMinions {
		if !slices.Contains(allMinions, minion) {
			return domain.NewNotClusterMinionError(KeyMinionsCephadm, minion)
		}
	}

	for _, minion := range adminMinions {
		if !slices.Contains(cephadmMinions, minion) {
			return domain.NewAdminWithoutCephadmError(KeyMinionsAdmin, minion)
		}
	}

	return nil
}

func checkContainerImages(p domain.Pillar) *domain.ValidationError {
	if !pillar.IsSet(p, KeyCephContainerImage) {
		return domain.NewMissingValueError(KeyCephContainerImage, "Ceph container image path")
	}

	return nil
}

func requireBool(p domain.Pillar, key string) *domain.ValidationError {
	if _, ok := pillar.GetBool(p, key); !ok {
		return domain.NewBooleanTypeError(key)
	}

	return nil
}
