package entry

import (
	"sync"
	"time"
)

// IDGenerator returns a fresh identifier for a newly created record.
type IDGenerator func() int64

// TimestampIDs returns a generator deriving identifiers from now in Unix milliseconds.
// Identifiers are strictly increasing even when two are requested within the same millisecond.
func TimestampIDs(now func() time.Time) IDGenerator {
	var (
		mu   sync.Mutex
		last int64
	)

	return func() int64 {
		mu.Lock()
		defer mu.Unlock()

		id := now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		last = id

		return id
	}
}
