package content

import (
	"adhibot/pkg/schema"
)

// Source is the read-only CMS boundary. Implementations hand back data that
// is already resolved and held in memory.
type Source interface {
	GlobalData() *GlobalData
}

// StaticSource serves a fixed GlobalData value.
type StaticSource struct {
	Data *GlobalData
}

// GlobalData implements Source.
func (s StaticSource) GlobalData() *GlobalData {
	return s.Data
}

// Aggregate maps CMS records into a PortfolioSnapshot. It never fails: absent
// records and nested fields become empty strings and empty sequences.
func Aggregate(src Source) schema.PortfolioSnapshot {
	snap := schema.PortfolioSnapshot{
		Skills:   []string{},
		Jobs:     []schema.Job{},
		Projects: []schema.Project{},
		Events:   []schema.Event{},
	}
	if src == nil {
		return snap
	}
	data := src.GlobalData()
	if data == nil {
		return snap
	}

	if data.About != nil {
		snap.About = data.About.AboutContent.Text("about_content")
		snap.Skills = append(snap.Skills, data.About.MainSkills.List()...)
	}

	for _, j := range data.Jobs {
		snap.Jobs = append(snap.Jobs, schema.Job{
			Title:       str(j.Title),
			Company:     str(j.Company),
			DateRange:   str(j.DateRange),
			Description: j.Description.Text("description"),
		})
	}

	for _, p := range data.Projects {
		snap.Projects = append(snap.Projects, schema.Project{
			Title:        str(p.Title),
			Description:  p.Description.Text("description"),
			Technologies: append([]string{}, p.Tech.List()...),
		})
	}

	for _, e := range data.Events {
		snap.Events = append(snap.Events, schema.Event{
			Title:       str(e.Title),
			Date:        str(e.Date),
			Location:    str(e.Location),
			Description: e.Content.Text("content"),
		})
	}

	return snap
}
