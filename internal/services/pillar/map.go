// Package pillar provides read-only pillar snapshots and the sources
// that load them.
package pillar

import (
	"strings"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// MapPillar is an in-memory pillar snapshot backed by nested maps.
// Reads are safe for concurrent use; Set and Reset are not and are
// meant for building fixtures before the snapshot is shared.
type MapPillar struct {
	root map[string]any
}

// NewMapPillar creates a pillar from a decoded document. The input is
// copied, so later changes to data do not leak into the snapshot.
func NewMapPillar(data map[string]any) *MapPillar {
	root, _ := normalize(data).(map[string]any)
	if root == nil {
		root = make(map[string]any)
	}

	return &MapPillar{root: root}
}

// Get returns the value stored under key.
func (p *MapPillar) Get(key string) (any, bool) {
	segments := splitKey(key)
	if len(segments) == 0 {
		return nil, false
	}

	node := p.root
	last := len(segments) - 1
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		if i == last {
			return value, true
		}

		child, isMap := value.(map[string]any)
		if !isMap {
			return nil, false
		}
		node = child
	}

	return nil, false
}

// Exists reports whether key resolves to a value, including nil.
func (p *MapPillar) Exists(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Set stores value under key, creating intermediate maps as needed.
// Intermediate scalars on the path are replaced.
func (p *MapPillar) Set(key string, value any) {
	segments := splitKey(key)
	if len(segments) == 0 {
		return
	}

	node := p.root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[segment] = child
		}
		node = child
	}

	node[segments[len(segments)-1]] = normalize(value)
}

// Reset removes key. Missing keys are ignored.
func (p *MapPillar) Reset(key string) {
	segments := splitKey(key)
	if len(segments) == 0 {
		return
	}

	node := p.root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			return
		}
		node = child
	}

	delete(node, segments[len(segments)-1])
}

// Clone returns a deep copy of the snapshot.
func (p *MapPillar) Clone() *MapPillar {
	return NewMapPillar(p.root)
}

// Data returns a deep copy of the underlying tree.
func (p *MapPillar) Data() map[string]any {
	data, _ := normalize(p.root).(map[string]any)
	return data
}

func splitKey(key string) []string {
	key = strings.Trim(key, domain.PillarKeySeparator)
	if key == "" {
		return nil
	}

	return strings.Split(key, domain.PillarKeySeparator)
}
