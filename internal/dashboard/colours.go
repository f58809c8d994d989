package dashboard

const defaultLineColour = "#FFFFFF"

var lineColours = map[string]string{
	"Bakerloo":           "#B36305",
	"Central":            "#E32017",
	"Circle":             "#FFD300",
	"District":           "#00782A",
	"Hammersmith & City": "#F3A9BB",
	"Jubilee":            "#A0A5A9",
	"Metropolitan":       "#9B0056",
	"Northern":           "#000000",
	"Piccadilly":         "#003688",
	"Victoria":           "#0098D4",
	"Waterloo & City":    "#95CDBA",
	"DLR":                "#00A4A7",
	"London Overground":  "#EE7C0E",
	"Elizabeth":          "#6950A1",
	"TfL Rail":           "#0019A8",
	"Tram":               "#84B817",
	"Emirates Air Line":  "#E51836",
}

// LineColour returns the brand colour for a line name.
func LineColour(name string) string {
	if c, ok := lineColours[name]; ok {
		return c
	}
	return defaultLineColour
}
