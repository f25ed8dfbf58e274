/*package camb binds the reion.Solver contract to a compiled CAMB-style
reionization solver library, loaded at runtime. The package marshals the
Go-side model and parameter objects into the fixed record layouts the
library expects and forwards each operation as a single foreign call; all
spline and integration state lives on the library's side of the boundary.
*/
package camb

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/jupiterrider/ffi"
)

var lib ffi.Lib
var loaded bool

// Load opens the solver library found in the given directory and resolves
// the entry points. It must be called once before any Solver method.
func Load(path string) error {
	var err error
	lib, err = ffi.Load(getLibraryPath(path))
	if err != nil {
		return fmt.Errorf("failed to load the solver library: %w", err)
	}

	if err := loadFuncs(); err != nil {
		return err
	}

	loaded = true
	return nil
}

// Loaded returns true once Load has succeeded.
func Loaded() bool { return loaded }

func getLibraryPath(basePath string) string {
	var filename string
	switch runtime.GOOS {
	case "linux", "freebsd":
		filename = "libcambreion.so"
	case "darwin":
		filename = "libcambreion.dylib"
	case "windows":
		filename = "cambreion.dll"
	default:
		filename = "libcambreion.so"
	}
	return filepath.Join(basePath, filename)
}

func errNotLoaded() error {
	return fmt.Errorf("the solver library hasn't been loaded; call " +
		"camb.Load with the directory that contains it first")
}
