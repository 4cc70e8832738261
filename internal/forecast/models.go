package forecast

const (
	PeriodDay   = "Day"
	PeriodNight = "Night"

	DefaultMaxDays = 5

	unknownDate    = "Unknown date"
	noForecastText = "No forecast available"
	daySeparator   = "\n---\n"
)

// Texts returned to callers. They are part of the tool contract and must not change.
const (
	MsgNotNumeric        = "Error: Latitude and longitude must be numbers"
	MsgInvalidLatitude   = "Error: Latitude must be between -90 and 90 degrees"
	MsgInvalidLongitude  = "Error: Longitude must be between -180 and 180 degrees"
	MsgUnableToFetch     = "Unable to fetch forecast data for this location"
	MsgNoLocationData    = "No forecast data available for this location"
	MsgNoForecastData    = "No forecast data available"
	prefixAPIError       = "Weather API error: "
	prefixMissingKey     = "Unable to process forecast data: "
	prefixProcessingFail = "Error processing forecast data: "
)

// ResultKind tags how a forecast request ended.
type ResultKind string

const (
	KindOK              ResultKind = "ok"
	KindInvalidInput    ResultKind = "invalid_input"
	KindAPIError        ResultKind = "api_error"
	KindNoData          ResultKind = "no_data"
	KindProcessingError ResultKind = "processing_error"
)

// Result is the outcome of GetForecast. Text is always renderable, whatever the Kind.
type Result struct {
	Kind ResultKind
	Text string
}

func (r Result) String() string {
	return r.Text
}

// OK reports whether Text holds a rendered forecast.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// DayEntry is one period of the daily forecast.
type DayEntry struct {
	Date        string
	PeriodLabel string
	Text        string
}
