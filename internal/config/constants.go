package config

import "time"

// Base application details
const AppName = "stepsort"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "stepsort.log"

// UI Layout
const StatusBarHeight = 2

// Status Bar
const MessageTimeout = 4 * time.Second

// Animation
const DefaultTickMillis = 16
const DefaultAutoStepMillis = 350
const DefaultSpeed = 8.0

// Values
const MaxValues = 64
const DefaultRandomMax = 20
const SystemClipboard = true

// DefaultValues seed a run when none are configured.
var DefaultValues = []int{5, 3, 8, 1, 4}
