//go:build windows

package platformid

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modshell32                                  = windows.NewLazySystemDLL("shell32.dll")
	procSetCurrentProcessExplicitAppUserModelID = modshell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
)

// SetAppUserModelID registers appID as the explicit App User Model ID for the
// current process. Windows uses it to group taskbar items and toasts.
func SetAppUserModelID(appID string) error {
	p, err := windows.UTF16PtrFromString(appID)
	if err != nil {
		return fmt.Errorf("platformid: invalid app user model id %q: %w", appID, err)
	}
	hr, _, _ := procSetCurrentProcessExplicitAppUserModelID.Call(uintptr(unsafe.Pointer(p)))
	if hr != 0 {
		return fmt.Errorf("platformid: SetCurrentProcessExplicitAppUserModelID failed: HRESULT 0x%x", hr)
	}
	return nil
}
