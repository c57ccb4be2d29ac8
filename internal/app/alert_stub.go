//go:build !windows

package app

// showErrorAlert is a no-op on platforms where the diagnostic already reaches
// a terminal or the system log.
func showErrorAlert(title, message string) bool {
	return false
}
