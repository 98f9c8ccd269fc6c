package schema

// PortfolioSnapshot is the subset of CMS content used to ground the assistant.
// It is built once per page load and never mutated afterwards.
type PortfolioSnapshot struct {
	About    string    `yaml:"about" json:"about"`
	Skills   []string  `yaml:"skills" json:"skills"`
	Jobs     []Job     `yaml:"jobs" json:"jobs"`
	Projects []Project `yaml:"projects" json:"projects"`
	Events   []Event   `yaml:"events" json:"events"`
}

// Job is a single work experience entry.
type Job struct {
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	DateRange   string `yaml:"date_range" json:"date_range"`
	Description string `yaml:"description" json:"description"`
}

// Project is a single portfolio project.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

// Event is a talk, hackathon or meetup entry.
type Event struct {
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
}

// IsEmpty reports whether the snapshot carries no content at all.
func (s PortfolioSnapshot) IsEmpty() bool {
	return s.About == "" && len(s.Skills) == 0 && len(s.Jobs) == 0 &&
		len(s.Projects) == 0 && len(s.Events) == 0
}
