package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/scene"
)

// Snapshot is the serialized form of a set of element transforms.
type Snapshot struct {
	Layout   string    `json:"layout"`
	Active   int       `json:"active_tweens"`
	Settled  bool      `json:"settled"`
	Elements []Element `json:"elements"`
}

// Element is one serialized element.
type Element struct {
	Index    int        `json:"index"`
	Symbol   string     `json:"symbol"`
	Name     string     `json:"name"`
	Position mgl64.Vec3 `json:"position"`
	Rotation mgl64.Vec3 `json:"rotation"`
}

// FromLayout pairs records with the targets of l.
// It returns a CONFIGURATION error when the counts differ.
func FromLayout(records dataset.Dataset, l layout.Layout) (Snapshot, error) {
	if records.Len() != l.Len() {
		return Snapshot{}, errors.Configuration("layout %q has %d targets for %d records",
			l.Name, l.Len(), records.Len())
	}
	snap := Snapshot{
		Layout:   l.Name,
		Settled:  true,
		Elements: make([]Element, l.Len()),
	}
	for i, t := range l.Targets {
		snap.Elements[i] = Element{
			Index:    i,
			Symbol:   records[i].Symbol,
			Name:     records[i].Name,
			Position: t.Position,
			Rotation: t.Rotation,
		}
	}
	return snap, nil
}

// FromScene captures the live transforms of s.
func FromScene(s *scene.Scene) Snapshot {
	els := s.Elements()
	snap := Snapshot{
		Layout:   s.Current(),
		Active:   s.Active(),
		Settled:  s.Settled(),
		Elements: make([]Element, len(els)),
	}
	for i, el := range els {
		snap.Elements[i] = Element{
			Index:    el.Index,
			Symbol:   el.Record.Symbol,
			Name:     el.Record.Name,
			Position: el.Transform.Position,
			Rotation: el.Transform.Rotation,
		}
	}
	return snap
}

// MarshalSnapshot serializes a Snapshot to pretty-printed JSON bytes.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSnapshot deserializes JSON bytes into a Snapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	for i, el := range s.Elements {
		if el.Index != i {
			return Snapshot{}, errors.New(errors.ErrCodeInvalidFormat,
				"element %d has index %d", i, el.Index)
		}
	}
	return s, nil
}

// WriteSnapshotFile writes a Snapshot to a JSON file.
func WriteSnapshotFile(s Snapshot, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSnapshotFile reads a Snapshot from a JSON file.
func ReadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalSnapshot(data)
}
