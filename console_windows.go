//go:build windows && production

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Release builds run without a console window. Debug and dev builds keep
// theirs so log output stays visible.
func init() {
	hideConsoleWindow()
}

func hideConsoleWindow() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	user32 := windows.NewLazySystemDLL("user32.dll")

	getConsoleWindow := kernel32.NewProc("GetConsoleWindow")
	getConsoleProcessList := kernel32.NewProc("GetConsoleProcessList")
	showWindow := user32.NewProc("ShowWindow")
	freeConsole := kernel32.NewProc("FreeConsole")

	hwnd, _, _ := getConsoleWindow.Call()
	if hwnd == 0 {
		return
	}

	// A console shared with a parent shell must stay visible; only detach.
	var pids [2]uint32
	attached, _, _ := getConsoleProcessList.Call(uintptr(unsafe.Pointer(&pids[0])), uintptr(len(pids)))
	if attached == 1 {
		const swHide = 0
		showWindow.Call(hwnd, swHide)
	}
	freeConsole.Call()
}
