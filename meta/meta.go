// meta/meta.go
package meta

import "time"

// TITLE is shown in the frame header.
const TITLE = " Power-4 "

// TICK_INTERVAL is the default time between two animation steps.
const TICK_INTERVAL = 250 * time.Millisecond

// LOG_LEVEL is the default zerolog level name.
const LOG_LEVEL = "info"

// PLAYER_ONE_COLOR and PLAYER_TWO_COLOR are the default token colors (W3C names).
const PLAYER_ONE_COLOR = "red"
const PLAYER_TWO_COLOR = "yellow"
