package level

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gridcaster/internal/core"
)

// MapExt is the file extension of level files.
const MapExt = ".map"

//go:embed maps/*.map
var builtin embed.FS

// Discover registers every MapExt file in dir under its base name and returns
// the names it added. Files are read when the level is opened, so a broken
// file only fails that level.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discover levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != MapExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), MapExt)
		p := filepath.Join(dir, e.Name())
		Register(name, func(map[string]string) (*core.Grid, error) {
			return core.LoadFile(p)
		})
		names = append(names, name)
	}
	return names, nil
}

func registerBuiltin() {
	entries, err := fs.ReadDir(builtin, "maps")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), MapExt)
		p := path.Join("maps", e.Name())
		Register(name, func(map[string]string) (*core.Grid, error) {
			data, err := builtin.ReadFile(p)
			if err != nil {
				return nil, err
			}
			return core.Load(bytes.NewReader(data))
		})
	}
}

func init() {
	registerBuiltin()
	Register("maze", func(cfg map[string]string) (*core.Grid, error) {
		return GenerateMaze(MazeFromMap(cfg))
	})
	Register("cave", func(cfg map[string]string) (*core.Grid, error) {
		return GenerateCave(CaveFromMap(cfg))
	})
}
