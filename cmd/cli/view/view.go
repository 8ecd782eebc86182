package view

import (
	"encoding/json"

	"github.com/linecard/autotag/pkg/convention/autotag"
	"github.com/linecard/autotag/pkg/convention/dispatch"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/golang-module/carbon/v2"
)

// headerRow is the row index StyleFunc receives for the header.
const headerRow = 0

var header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cell = lipgloss.NewStyle().Padding(0, 1)

func style(row, col int) lipgloss.Style {
	if row == headerRow {
		return header
	}
	return cell
}

// RouteTable renders every supported event with the resource it tags.
func RouteTable(r dispatch.Registry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(style).
		Headers("Source", "Event", "Resource")

	for _, k := range r.Keys() {
		route, _ := r.Route(k)
		t.Row(k.Source, k.Name, route.Resource)
	}

	return t.Render()
}

type Call struct {
	Method    string   `json:"method"`
	Region    string   `json:"region"`
	Resources []string `json:"resources"`
	Tags      string   `json:"tags"`
}

type ReplayView struct {
	EventId  string           `json:"eventId"`
	Route    string           `json:"route"`
	Resource string           `json:"resource,omitempty"`
	Age      string           `json:"age,omitempty"`
	DryRun   bool             `json:"dryRun"`
	Calls    []Call           `json:"calls,omitempty"`
	Response autotag.Response `json:"response"`
}

// Since renders the age of a CloudTrail eventTime for humans.
func Since(eventTime string) string {
	if eventTime == "" {
		return ""
	}

	c := carbon.Parse(eventTime)
	if c.Error != nil {
		return ""
	}

	return c.DiffForHumans()
}

func (r ReplayView) Json() (string, error) {
	j, err := json.MarshalIndent(r, "", "  ")
	return string(j), err
}
