package levels

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.json
var levelsFS embed.FS

// Load reads a level file by name (without extension). A copy on disk next
// to the binary wins over the embedded one.
func Load(name string) ([]byte, error) {
	file := name + ".json"
	if b, err := os.ReadFile(filepath.Join("levels", file)); err == nil {
		return b, nil
	}
	return levelsFS.ReadFile(file)
}
