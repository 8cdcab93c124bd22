package fileutil

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

func FileExists(name string) bool {
	if stat, err := os.Stat(name); err == nil {
		return !stat.IsDir()
	}
	return false
}

// ServableFile reports whether urlPath names a regular file in fsys. Paths
// are cleaned the same way http.FileServer cleans them.
func ServableFile(fsys http.FileSystem, urlPath string) bool {
	var name = path.Clean("/" + urlPath)
	if name == "/" {
		return false
	}
	var file, err = fsys.Open(name)
	if err != nil {
		return false
	}
	defer file.Close()
	if stat, err := file.Stat(); err == nil {
		return !stat.IsDir()
	}
	return false
}

func ProbeSettingsFilename(cmdLineArg string) string {
	if cmdLineArg != "" {
		return cmdLineArg
	}
	var basename = filepath.Base(os.Args[0])
	var exeName = strings.TrimSuffix(basename, filepath.Ext(basename))
	var nameVariants = []string{exeName + ".jsonc", exeName + ".json"}
	for _, name := range nameVariants {
		if FileExists(name) {
			return name
		}
	}
	return exeName + ".jsonc"
}
