// Package render turns a forecast bundle into styled terminal output:
// a current-conditions panel followed by a daily forecast table.
package render

import (
	"fmt"
	"io"

	"weather-cli/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WeatherReport writes the full report for a bundle: current conditions
// panel, blank line, forecast table. It has no side effects beyond w.
func WeatherReport(w io.Writer, bundle models.ForecastBundle) {
	CurrentPanel(w, bundle)
	fmt.Fprintln(w)
	ForecastTable(w, bundle)
}

// CurrentPanel writes a titled box with the current conditions.
func CurrentPanel(w io.Writer, bundle models.ForecastBundle) {
	cur := bundle.Current
	description, emoji := Condition(cur.ConditionCode)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Current Weather: %s", bundle.Location.DisplayName())
	t.Style().Title.Align = text.AlignCenter
	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	label := func(s string) string { return text.FgCyan.Sprint(s) }

	t.AppendRow(table.Row{label("Temperature:"), FormatTemp(cur.Temperature, bundle.Units)})
	t.AppendRow(table.Row{label("Feels like:"), FormatTemp(cur.ApparentTemp, bundle.Units)})
	t.AppendRow(table.Row{label("Humidity:"), fmt.Sprintf("%d%%", cur.Humidity)})
	t.AppendRow(table.Row{label("Wind:"), FormatWind(cur.WindSpeed, cur.WindDirection, bundle.Units)})
	t.AppendRow(table.Row{label("Conditions:"), fmt.Sprintf("%s  %s", emoji, description)})

	t.Render()
}

// ForecastTable writes the daily forecast as a titled table with highs in
// red and lows in blue, matching how forecasts are conventionally colored.
func ForecastTable(w io.Writer, bundle models.ForecastBundle) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%d-Day Forecast", len(bundle.Days))
	t.Style().Title.Align = text.AlignCenter

	t.AppendHeader(table.Row{"Date", "Conditions", "High", "Low", "Precip", "Sunrise", "Sunset"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "High", Align: text.AlignRight},
		{Name: "Low", Align: text.AlignRight},
		{Name: "Precip", Align: text.AlignRight},
		{Name: "Sunrise", Align: text.AlignCenter},
		{Name: "Sunset", Align: text.AlignCenter},
	})

	for _, day := range bundle.Days {
		description, emoji := Condition(day.ConditionCode)
		t.AppendRow(table.Row{
			formatDate(day.Date),
			fmt.Sprintf("%s  %s", emoji, description),
			text.FgRed.Sprint(FormatTemp(day.TempMax, bundle.Units)),
			text.FgBlue.Sprint(FormatTemp(day.TempMin, bundle.Units)),
			FormatPrecip(day.Precipitation, bundle.Units),
			formatClock(day.Sunrise),
			formatClock(day.Sunset),
		})
	}

	t.Render()
}
