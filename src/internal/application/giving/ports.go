package giving

import "time"

// Clock supplies the current time. Injected so tests can pin timestamps.
type Clock func() time.Time
