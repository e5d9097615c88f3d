// Package layout persists desktop arrangements as named JSON snapshots, so
// a session can be saved and rebuilt window for window: frames, z-order,
// minimize/maximize state, and the z counter.
package layout

import (
	"time"

	"deskwm/internal/registry"
)

// SnapshotVersion is written into every saved layout for forward
// compatibility checks on load.
const SnapshotVersion = 1

// Snapshot is the serialized form of one desktop arrangement.
type Snapshot struct {
	Version   int               `json:"version"`
	Name      string            `json:"name"`
	Timestamp time.Time         `json:"timestamp"`
	Windows   []registry.Window `json:"windows"`
	FocusedID string            `json:"focused_id,omitempty"`
	NextZ     int               `json:"next_z"`
}

// Capture snapshots the registry's current state under the given name.
func Capture(name string, reg *registry.Registry) *Snapshot {
	s := &Snapshot{
		Version:   SnapshotVersion,
		Name:      name,
		Timestamp: time.Now().UTC(),
		Windows:   reg.List(),
		NextZ:     reg.ZCounter(),
	}
	if w, ok := reg.Focused(); ok {
		s.FocusedID = w.ID
	}
	return s
}

// Apply rebuilds the registry from the snapshot. Focus is recomputed from
// the restored z-orders; FocusedID is informational only.
func (s *Snapshot) Apply(reg *registry.Registry) {
	reg.ReplaceAll(s.Windows)
	reg.RestoreCounter(s.NextZ)
}
