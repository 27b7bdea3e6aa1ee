// ABOUTME: Filesystem locations of checktree settings
// ABOUTME: Global dir honours CHECKTREE_CONFIG_DIR, else the OS user config dir; project dir is .checktree/

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "checktree"
	projectDirName = ".checktree"
	settingsName   = "settings.json"
)

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", projectDirName)
	}
	return filepath.Join(base, appDirName)
}

// ProjectDir returns the project-local config directory under projectRoot.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalSettingsFile returns the path of the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), settingsName)
}

// ProjectSettingsFile returns the path of the project settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), settingsName)
}
