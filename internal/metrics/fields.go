package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrTag      = "tag"
	AttrResult   = "result"
	AttrOutcome  = "outcome"
	AttrState    = "state"
)
