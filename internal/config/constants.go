package config

import "time"

// Base application details
const AppName = "tide-input"
const ConfigDirName = "tide"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultThemeFileName = "theme.toml"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Input behavior defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 1
const DefaultMaxHistory = 100
const DefaultDoubleClickMs = 400
const SystemClipboard = true
