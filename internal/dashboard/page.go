package dashboard

import (
	"html/template"
	"io"
	"time"

	"github.com/i474232898/home-dashboard/internal/weather"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="60">
<title>Dashboard</title>
<style>
body { background: #000; color: #fff; font-family: sans-serif; padding: 6rem 2rem 2rem; }
.date { font-size: 1.5rem; } .time { font-size: 4.5rem; font-weight: bold; }
.muted { color: #9ca3af; } .max { color: #f87171; } .min { color: #60a5fa; }
.days { display: flex; gap: 1rem; } .day { text-align: center; font-size: .875rem; }
.bar { background: rgb(59,130,246); height: 1rem; display: inline-block; }
.line { font-size: 1.5rem; } .status { font-size: 1.25rem; color: #eab308; }
</style>
</head>
<body>
<div class="date">{{.Date}}</div>
<div class="time">{{.Time}}</div>

<section>
{{with .Weather}}
  <div>
    <img src="https://openweathermap.org/img/wn/{{.Current.Icon}}@2x.png" alt="{{.Current.Description}}" width="80" height="80">
    <span style="font-size:1.875rem">Actual {{.Current.Temp}}°C</span>
    <span class="muted">Feels Like {{.Current.FeelsLike}}°</span>
    <span class="max">{{.Current.TempMax}}°</span> / <span class="min">{{.Current.TempMin}}°</span>
  </div>
  <div class="days">
  {{range .Forecast}}
    <div class="day">
      <div>{{.Date}}</div>
      <img src="https://openweathermap.org/img/wn/{{.Icon}}.png" alt="{{.Description}}" width="40" height="40">
      <div>{{.Temp}}°C</div>
    </div>
  {{end}}
  </div>
{{end}}
{{with .WeatherMessage}}<div>{{.}}</div>{{end}}
</section>

{{with .Rain}}
<section>
  <h2>Chance of Rain</h2>
  {{range .}}
  <div><span style="display:inline-block;width:4rem">{{.Hour}}</span><span class="bar" style="width:{{.Chance}}%"></span> {{.Chance}}%</div>
  {{end}}
</section>
{{end}}

{{with .Transit}}
<section>
  {{range .}}
  <div><span class="line" style="color:{{.Colour}}">{{.Name}}</span> <span class="status">{{.Status}}</span></div>
  {{end}}
</section>
{{end}}
</body>
</html>
`))

type pageData struct {
	Date           string
	Time           string
	Weather        *WeatherPanel
	WeatherMessage string
	Rain           []weather.RainPoint
	Transit        []TransitRow
}

// RenderPage writes the dashboard page as of now.
func (d *Dashboard) RenderPage(w io.Writer, now time.Time) error {
	now = now.In(d.location)
	return pageTemplate.Execute(w, pageData{
		Date:           now.Format("Monday, January 2, 2006"),
		Time:           now.Format("15:04"),
		Weather:        d.Weather.Panel(),
		WeatherMessage: d.Weather.Placeholder(),
		Rain:           d.Rain.Bars(),
		Transit:        d.Transit.Rows(),
	})
}
