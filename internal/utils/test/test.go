// Package testutils holds helpers shared by the package tests
package testutils

import (
	"io/ioutil"
	"os"

	"github.com/mitchellh/go-homedir"
)

// NewTempDir constructs a new temporary directory
// and returns the directory name along with a cleanup function
// or any error that occurred during the process
func NewTempDir(name string) (string, func(), error) {
	dir, err := ioutil.TempDir("", name)
	if err != nil {
		return "", nil, err
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}

// SetupHomeDir sets up the $HOME directory for a test
// and returns the directory name along with a reset function
func SetupHomeDir(newHome string) (string, func()) {
	origHome := os.Getenv("HOME")
	if newHome == "" {
		newHome = "."
	}

	homedir.DisableCache = true
	_ = os.Setenv("HOME", newHome)

	return newHome, func() {
		homedir.DisableCache = false
		_ = os.Setenv("HOME", origHome)
	}
}

// SetupEnv sets the provided environment variables for a test
// and returns a function restoring their original values
func SetupEnv(vars map[string]string) func() {
	type original struct {
		value string
		ok    bool
	}

	originals := make(map[string]original, len(vars))
	for key, value := range vars {
		v, ok := os.LookupEnv(key)
		originals[key] = original{v, ok}
		if value == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, value)
		}
	}

	return func() {
		for key, o := range originals {
			if o.ok {
				_ = os.Setenv(key, o.value)
			} else {
				_ = os.Unsetenv(key)
			}
		}
	}
}
