package consts

const (
	ParamDate = "date"
	ParamHd   = "hd"
	ApiKey    = "api_key"

	FieldURL   = "url"
	FieldHDURL = "hdurl"

	TimeFormat = "2006-01-02"

	// FirstPictureDate is the day the archive starts.
	FirstPictureDate = "1995-06-16"

	BaseURL = "https://api.nasa.gov/planetary/apod"
	DemoKey = "DEMO_KEY"

	EnvApiKey = "NASA_API_KEY"

	UserAgent = "apod-action/1.0"

	ActionName = "apod"

	True = "true"
)
