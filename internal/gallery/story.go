package gallery

import "strings"

// Pages in display order.
const (
	PageOverview = "overview"
	PageInput    = "input"
	PageTable    = "table"
)

// Story is one named arrangement of widgets.
type Story struct {
	Page        string
	Name        string
	Description string
	Build       func(Env) *Scene
}

// ID is the lower-case "page/name" used on the command line.
func (s Story) ID() string {
	return strings.ToLower(s.Page + "/" + s.Name)
}

// Stories returns every built-in story, page by page.
func Stories() []Story {
	var out []Story
	out = append(out, overviewStories()...)
	out = append(out, inputStories()...)
	out = append(out, tableStories()...)
	return out
}
