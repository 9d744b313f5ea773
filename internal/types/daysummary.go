package types

// DaySummary is the display-ready weather record for one calendar day.
type DaySummary struct {
	DateISO     string `json:"dateISO" example:"2024-06-02" doc:"Date returned by the forecast API (YYYY-MM-DD)"`
	Label       string `json:"label" example:"Sun, Jun 2" doc:"Short localized label for the date"`
	TMax        int    `json:"tMax" doc:"Rounded maximum temperature (°C)"`
	TMin        int    `json:"tMin" doc:"Rounded minimum temperature (°C)"`
	Precip      int    `json:"precip" doc:"Rounded precipitation total (mm)"`
	Code        int    `json:"code" doc:"WMO weather code"`
	Description string `json:"description" example:"Overcast" doc:"Short text for the weather code"`
	Timezone    string `json:"timezone" example:"Europe/London" doc:"Timezone reported for the coordinates"`
}
