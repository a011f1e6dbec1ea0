package app

import (
	"github.com/bethropolis/tidebuf/internal/config"
	"github.com/mattn/go-isatty"
)

// fileDescriptor is satisfied by *os.File.
type fileDescriptor interface {
	Fd() uintptr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(fileDescriptor)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// chooseInterface resolves "auto" to tui when both ends are a terminal and no
// input file was named, otherwise to stream.
func chooseInterface(mode string, opts Options) string {
	if mode != config.InterfaceAuto {
		return mode
	}
	if opts.InputPath != "" && opts.InputPath != "-" {
		return config.InterfaceStream
	}
	if isTerminal(opts.Stdin) && isTerminal(opts.Stdout) {
		return config.InterfaceTUI
	}
	return config.InterfaceStream
}
