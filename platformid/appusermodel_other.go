//go:build !windows

package platformid

import "fmt"

// SetAppUserModelID is Windows-only; on other platforms it reports
// ErrUnsupportedPlatform.
func SetAppUserModelID(appID string) error {
	return fmt.Errorf("%w: app user model id is windows-only", ErrUnsupportedPlatform)
}
