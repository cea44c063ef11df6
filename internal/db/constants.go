package db

// CoreDataEpochOffset is the number of seconds between the Unix epoch and
// the Core Data reference date (2001-01-01 UTC) used by the store.
const CoreDataEpochOffset = 978307200

// MinSeconds is the usage threshold; shorter totals and intervals are noise.
const MinSeconds = 60

// SQL fragments shared by the aggregate and interval queries.
const (
	// sqlUsageFilterClause selects foreground app intervals after a start time.
	sqlUsageFilterClause = `ZSTREAMNAME IN ('/app/usage', '/app/inFocus')
		  AND ZSTARTDATE > ?
		  AND ZVALUESTRING IS NOT NULL
		  AND ZVALUESTRING != ''`

	// busyTimeoutMillis bounds how long a read waits on a locked store.
	busyTimeoutMillis = 5000
)
