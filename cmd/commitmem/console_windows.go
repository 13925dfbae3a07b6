//go:build windows

package main

import "golang.org/x/sys/windows"

const cpUTF8 = 65001

// initConsole switches the console output code page to UTF-8 so executable
// names outside the ANSI code page print correctly. Call restore before exit.
func initConsole() (restore func(), err error) {
	return switchCodePage(windows.GetConsoleOutputCP, windows.SetConsoleOutputCP, cpUTF8)
}
