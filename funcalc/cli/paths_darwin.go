package cli

import (
	"os"
	"path/filepath"
)

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	a.home, err = os.UserHomeDir()
	return
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Logs", a.tag)
}

func (a appPaths) HistoryDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Caches")
	}
	return filepath.Join(c, a.tag)
}
