package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Confidence levels
const (
	ConfidenceExplicit = 95 // an intent verb is present
	ConfidenceImplied  = 70 // only a time range implies scheduling
	ConfidenceNone     = 0
)

// Reasons
const (
	ReasonCancelVerb   = "cancel verb present"
	ReasonListKeyword  = "listing keyword without a time range"
	ReasonScheduleVerb = "schedule verb present"
	ReasonTimeRange    = "time range present"
	ReasonEmpty        = "empty message"
	ReasonNoKeyword    = "no intent keyword"
)
