package prefabs

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.yaml
var prefabsFS embed.FS

// Load reads a prefab file. A copy on disk next to the binary wins over the
// embedded one, so prefab values can be tweaked without recompiling.
func Load(name string) ([]byte, error) {
	if b, err := os.ReadFile(filepath.Join("prefabs", name)); err == nil {
		return b, nil
	}
	return prefabsFS.ReadFile(name)
}
