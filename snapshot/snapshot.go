package snapshot

import (
	"fmt"
	"io"

	"github.com/npillmayer/dsfixture"
	"gopkg.in/yaml.v3"
)

// Entry describes one variable in scope.
type Entry struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Label    string   `yaml:"label"`
	Size     int      `yaml:"size"`
	Elements []string `yaml:"elements,omitempty"`
}

// Snapshot is the state of a fixture at the debug point.
type Snapshot struct {
	Marker    string  `yaml:"marker"`
	Variables []Entry `yaml:"variables"`
}

// Take captures the variables of f.
func Take(f *dsfixture.Fixture) Snapshot {
	s := Snapshot{Marker: dsfixture.DebugPoint}
	for _, v := range f.Variables() {
		e := Entry{
			Name:  v.Name,
			Kind:  dsfixture.Detect(v.Value).String(),
			Label: dsfixture.Label(v),
		}
		e.Size, _ = dsfixture.Size(v.Value)
		for _, elem := range dsfixture.Elements(v) {
			e.Elements = append(e.Elements, elem.String())
		}
		s.Variables = append(s.Variables, e)
	}
	T().Debugf("snapshot taken with %d variables", len(s.Variables))
	return s
}

// Lookup finds the entry for a variable name.
func (s Snapshot) Lookup(name string) (Entry, bool) {
	for _, e := range s.Variables {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Encode writes s as a YAML document.
func Encode(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}

// Decode reads a snapshot from a YAML document.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}
