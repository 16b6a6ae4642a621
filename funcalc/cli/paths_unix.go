//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: strings.ToLower(appTag)}
	a.home, err = os.UserHomeDir()
	return
}

// ConfigDir is $XDG_CONFIG_HOME/funcalc or ~/.config/funcalc.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.cacheDir(), "logs", a.tag)
}

// HistoryDir is $XDG_CACHE_HOME/funcalc or ~/.cache/funcalc.
func (a appPaths) HistoryDir() string {
	return filepath.Join(a.cacheDir(), a.tag)
}

func (a appPaths) cacheDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = filepath.Join(a.home, ".cache")
	}
	return c
}
