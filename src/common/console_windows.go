package common

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32DLL        = windows.NewLazySystemDLL("kernel32.dll")
	setConsoleOutputCP = kernel32DLL.NewProc("SetConsoleOutputCP")
)

// Alphabet entries can be arbitrary multi-byte codepoints; the legacy
// Windows console codepage would render them as mojibake. Switch the
// console to UTF-8 (codepage 65001) and opt in to VT escape processing.
// See: https://learn.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences#output-sequences
func init() {
	var outMode uint32
	out := windows.Handle(os.Stdout.Fd())
	if err := windows.GetConsoleMode(out, &outMode); err != nil {
		return
	}
	outMode |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(out, outMode)

	utf8CodePage := uint(65001)
	if ret, _, err := setConsoleOutputCP.Call(uintptr(utf8CodePage)); ret == 0 {
		fmt.Fprintf(os.Stderr, "Couldn't set console output codepage: %v\n", err)
	}
}
