package config

// Base application details
const AppName = "tidebuf"
const ConfigDirName = "tidebuf"
const DefaultConfigFileName = "config.toml" // Main config file
const Version = "0.1.0"

// Session interface modes
const (
	InterfaceAuto   = "auto"
	InterfaceStream = "stream"
	InterfaceTUI    = "tui"
)

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultUnits = "grapheme"
const DefaultInterface = InterfaceAuto
const SystemClipboard = false
const ReportStats = false
