package weather

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/home-dashboard/internal/common"
)

const (
	// rainSamples is 24 hours of 3-hour slots.
	rainSamples = 8
	// rainDayStartHour is where the rain chart's virtual clock starts.
	rainDayStartHour = 6
	// maxForecastDays caps the multi-day outlook.
	maxForecastDays = 5
	// noonSlot marks the forecast slot used for each day.
	noonSlot = "12:00:00"
)

var validate = validator.New()

var (
	errNoConditions = errors.New("current conditions carry no weather entry")
)

// NormalizeCurrent rounds the current conditions into a CurrentWeather.
func NormalizeCurrent(p CurrentConditions) (CurrentWeather, error) {
	if p.Main == nil || len(p.Weather) == 0 {
		return CurrentWeather{}, errNoConditions
	}
	return CurrentWeather{
		Temp:        common.RoundHalfUp(p.Main.Temp),
		TempMin:     common.RoundHalfUp(p.Main.TempMin),
		TempMax:     common.RoundHalfUp(p.Main.TempMax),
		FeelsLike:   common.RoundHalfUp(p.Main.FeelsLike),
		Description: p.Weather[0].Description,
		Icon:        p.Weather[0].Icon,
	}, nil
}

// NoonForecast picks one entry per day, the one whose dt_txt is the noon slot,
// and labels it with the short weekday in loc.
func NoonForecast(list []ForecastEntry, loc *time.Location) []ForecastDay {
	days := make([]ForecastDay, 0, maxForecastDays)
	for _, item := range list {
		if len(days) >= maxForecastDays {
			break
		}
		if !strings.Contains(item.DtTxt, noonSlot) {
			continue
		}

		day := ForecastDay{
			Date: time.Unix(item.Dt, 0).In(loc).Format("Mon"),
			Temp: common.RoundHalfUp(item.Main.Temp),
		}
		if len(item.Weather) > 0 {
			day.Icon = item.Weather[0].Icon
			day.Description = item.Weather[0].Description
		}
		days = append(days, day)
	}
	return days
}

// RainOutlook turns the first 24 hours of forecast slots into chart points
// ordered on a clock that starts at 06:00 and wraps. A single incomplete
// entry fails the whole outlook.
func RainOutlook(list []ForecastEntry, loc *time.Location) ([]RainPoint, error) {
	if len(list) > rainSamples {
		list = list[:rainSamples]
	}

	type slot struct {
		point  RainPoint
		hour24 int
	}

	slots := make([]slot, 0, len(list))
	for _, item := range list {
		if err := validate.Struct(item); err != nil {
			return nil, common.NewError(common.KindValidation, "invalid item data", err)
		}

		ts := time.Unix(item.Dt, 0).In(loc)
		slots = append(slots, slot{
			point: RainPoint{
				Hour:   ts.Format("3 PM"),
				Chance: common.RoundHalfUp(*item.Pop * 100),
			},
			hour24: ts.Hour(),
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return rainSortKey(slots[i].hour24) < rainSortKey(slots[j].hour24)
	})

	points := make([]RainPoint, 0, len(slots))
	for _, s := range slots {
		points = append(points, s.point)
	}

	if len(points) == 0 {
		return nil, common.NewError(common.KindValidation, "no valid data points found", nil)
	}
	return points, nil
}

func rainSortKey(hour24 int) int {
	return (hour24 + 24 - rainDayStartHour) % 24
}
