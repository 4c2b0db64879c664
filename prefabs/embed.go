package prefabs

import "embed"

//go:embed *.yaml
var specsFS embed.FS

// Load reads an embedded spec file by name.
func Load(filename string) ([]byte, error) {
	return specsFS.ReadFile(filename)
}
