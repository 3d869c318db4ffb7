// Package platformid identifies the running platform and gates
// platform-specific helpers.
package platformid

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var ErrUnsupportedPlatform = errors.New("platformid: unsupported platform")

const (
	Windows = "windows"
	Linux   = "linux"
	Darwin  = "darwin"
)

// Current returns the running platform's GOOS name.
func Current() string { return runtime.GOOS }

func IsWindows() bool { return runtime.GOOS == Windows }

func IsLinux() bool { return runtime.GOOS == Linux }

func IsDarwin() bool { return runtime.GOOS == Darwin }

// Supported returns nil when the running platform is one of targets.
func Supported(targets ...string) error {
	for _, t := range targets {
		if runtime.GOOS == t {
			return nil
		}
	}
	return fmt.Errorf("%w: running on %q, want one of [%s]",
		ErrUnsupportedPlatform, runtime.GOOS, strings.Join(targets, ", "))
}

// Guard wraps fn so it runs only on the given targets and fails with
// ErrUnsupportedPlatform elsewhere.
func Guard(fn func() error, targets ...string) func() error {
	return func() error {
		if err := Supported(targets...); err != nil {
			return err
		}
		return fn()
	}
}
