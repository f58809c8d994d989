package weather

import "encoding/json"

// Coordinates is the single coordinate pair every weather query uses.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// Snapshot is the un-normalized pass-through served by /api/weather.
type Snapshot struct {
	Current  json.RawMessage `json:"current"`
	Forecast json.RawMessage `json:"forecast"`
}

// ConditionCode is one entry of the provider's "weather" array.
type ConditionCode struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentConditions is the subset of the current-conditions payload we read.
// Main is a pointer so an absent object is distinguishable from zero values.
type CurrentConditions struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
	} `json:"main" validate:"required"`
	Weather []ConditionCode `json:"weather" validate:"required"`
}

// ForecastPayload is the 5-day/3-hour forecast payload.
type ForecastPayload struct {
	List []ForecastEntry `json:"list" validate:"required"`
}

// ForecastEntry is one 3-hour forecast slot.
type ForecastEntry struct {
	Dt    int64  `json:"dt" validate:"required"`
	DtTxt string `json:"dt_txt"`
	// Pop is the probability of precipitation as a 0-1 fraction.
	Pop  *float64 `json:"pop" validate:"required"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []ConditionCode `json:"weather"`
}

// CurrentWeather is the display-ready current conditions; temperatures in whole °C.
type CurrentWeather struct {
	Temp        int    `json:"temp"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	FeelsLike   int    `json:"feels_like"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastDay is one day of the multi-day outlook, sampled at local noon.
type ForecastDay struct {
	Date        string `json:"date"`
	Temp        int    `json:"temp"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// RainPoint is one bar of the rain-probability chart.
type RainPoint struct {
	Hour   string `json:"hour"`
	Chance int    `json:"chance"`
}
