package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorldIndicator marks a directory as a world folder.
const WorldIndicator = "worldoptions.json"

// FindWorldRoot looks upwards from startDir for a folder holding the world
// indicator and returns its absolute path.
func FindWorldRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, WorldIndicator) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("world folder not found above %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
