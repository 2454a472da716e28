package render

import "html/template"

// Messages shown in place of a plot.
const (
	MsgPlotNotFound = "Plot file not found in Figs folder."
	MsgNoPlotMapped = "No plot mapped for this question yet."
)

// Overview page text.
const (
	OverviewSubheader   = "Dataset Overview"
	OverviewDescription = "This dashboard presents an analysis of Deutsche Bahn train arrival delays."
)

// PlotStatus says how a question page presents its plot.
type PlotStatus string

const (
	PlotShown    PlotStatus = "image"
	PlotMissing  PlotStatus = "warning"
	PlotUnmapped PlotStatus = "info"
)

// Plot is the resolved plot of a question page.
type Plot struct {
	Status  PlotStatus `json:"status"`
	File    string     `json:"file,omitempty"`
	Path    string     `json:"-"`
	URL     string     `json:"url,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Overview is the rendered dataset overview.
type Overview struct {
	Subheader    string     `json:"subheader"`
	Description  string     `json:"description"`
	TotalRecords int        `json:"total_records"`
	Columns      []string   `json:"columns"`
	Rows         [][]string `json:"rows"`
}

// Question is a rendered question page.
type Question struct {
	Subheader    string        `json:"subheader"`
	Question     string        `json:"question"`
	QuestionHTML template.HTML `json:"-"`
	Plot         Plot          `json:"plot"`
	Findings     []string      `json:"findings"`
}

// Page is one rendered navigation option. Exactly one of Overview and
// Question is set.
type Page struct {
	ID       string    `json:"id"`
	Overview *Overview `json:"overview,omitempty"`
	Question *Question `json:"question,omitempty"`
}
