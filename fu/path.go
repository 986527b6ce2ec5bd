package fu

import (
	"go-ml.dev/pkg/iokit"
	"path/filepath"
)

/*
CachePath resolves a relative file name into the go-ml cache directory
*/
func CachePath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "nearest", s))
}
