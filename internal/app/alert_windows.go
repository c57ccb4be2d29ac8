//go:build windows

package app

import (
	"golang.org/x/sys/windows"
)

// showErrorAlert displays a native message box. Release builds have no
// console, so this is the only place an initialization error is visible.
func showErrorAlert(title, message string) bool {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return false
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return false
	}
	_, err = windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONERROR)
	return err == nil
}
