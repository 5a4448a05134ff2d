package cli

import (
	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/pkg/manifest"
)

// Generate renders the matcher described by the manifest at path.
// An empty out.Path falls back to the manifest's own output setting.
func Generate(env Env, path string, out Output) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	env.logger().Debug("Manifest loaded", "path", m.Path, "entries", len(m.Entries))

	mt, err := m.Matcher(matchgen.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	if out.Path == "" {
		out.Path = m.OutputPath()
	}
	return emit(env, mt, out)
}
