package router

// Intent represents what a request asks the assistant to do
type Intent string

const (
	IntentSchedule Intent = "SCHEDULE"
	IntentCancel   Intent = "CANCEL"
	IntentList     Intent = "LIST"
	IntentUnknown  Intent = "UNKNOWN"
)

// RouterOutput is the structured response of the keyword router
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}
