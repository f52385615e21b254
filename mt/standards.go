package mt

import (
	"sync"

	schema "github.com/kujaku11/mtschema"
)

// Standards returns the process-wide registry of catalog schemas, built once
// and immutable afterwards. Lookups are safe for concurrent use.
var Standards = sync.OnceValue(func() *schema.Registry {
	return schema.NewRegistry().MustRegister(
		experimentSchema,
		surveySchema,
		stationSchema,
		runSchema,
		channelSet,
		electricSchema,
		magneticSchema,
		auxiliarySchema,
		filterSet,
		poleZeroSchema,
		coefficientSchema,
		timeDelaySchema,
		firSchema,
		fapSchema,
	)
})
