package user

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

const (
	serviceName     = "pylon"
	credentialsFile = "credentials.json"

	envAppData       = "APPDATA"
	envXDGConfigHome = "XDG_CONFIG_HOME"
)

// HomeDir returns the CLI home directory
func HomeDir() (string, error) {
	return configDir(runtime.GOOS, os.Getenv)
}

// CredentialsPath returns the path of the CLI credentials file
func CredentialsPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFile), nil
}

func configDir(goos string, getenv func(string) string) (string, error) {
	if goos == "windows" {
		if appData := getenv(envAppData); appData != "" {
			return filepath.Join(appData, serviceName), nil
		}
	}

	if xdgConfigHome := getenv(envXDGConfigHome); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, serviceName), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", serviceName), nil
}
