package render

// condition is a human-readable description and emoji for a WMO weather code.
type condition struct {
	Description string
	Emoji       string
}

// conditionTable maps WMO weather interpretation codes to display values.
// Codes per https://open-meteo.com/en/docs#weather_variable_documentation
var conditionTable = map[int]condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌧️"},
	57: {"Dense freezing drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌧️"},
	67: {"Heavy freezing rain", "🌧️"},
	71: {"Slight snowfall", "❄️"},
	73: {"Moderate snowfall", "❄️"},
	75: {"Heavy snowfall", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌦️"},
	82: {"Violent rain showers", "🌧️"},
	85: {"Slight snow showers", "❄️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// unknownCondition is used for codes the table does not recognize.
var unknownCondition = condition{"Unknown", "❓"}

// Condition returns the description and emoji for a WMO weather code,
// falling back to a generic placeholder for unrecognized codes.
func Condition(code int) (description, emoji string) {
	if c, ok := conditionTable[code]; ok {
		return c.Description, c.Emoji
	}
	return unknownCondition.Description, unknownCondition.Emoji
}
