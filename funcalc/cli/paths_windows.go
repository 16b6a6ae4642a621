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

// ConfigDir is %AppData%\FUNCALC.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}

// LogDir is %LocalAppData%\FUNCALC\Logs.
func (a appPaths) LogDir() string {
	return filepath.Join(a.localDir(), "Logs")
}

func (a appPaths) HistoryDir() string {
	return a.localDir()
}

func (a appPaths) localDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}
