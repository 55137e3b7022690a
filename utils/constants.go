// File: utils/constants.go
package utils

import "time"

// DirectoryCachePrefix is the prefix used for Redis directory lookup cache keys.
const DirectoryCachePrefix = "directory:"

// DirectoryCacheTTL is the time-to-live for cached directory lookups.
const DirectoryCacheTTL = 5 * time.Minute

// TranscriptTTL is how long an idle assistant transcript survives before
// the session resets.
const TranscriptTTL = 30 * time.Minute
