package content

// The record types below mirror the nesting of the CMS export. Any level may
// be missing in a partially populated entry, so every accessor is nil-safe.

// GlobalData is the full query result the chatbot is grounded on.
type GlobalData struct {
	About    *AboutRecord    `yaml:"about"`
	Hero     *HeroRecord     `yaml:"hero"`
	Jobs     []JobRecord     `yaml:"jobs"`
	Projects []ProjectRecord `yaml:"projects"`
	Events   []EventRecord   `yaml:"events"`
}

// RichText is the CMS wrapper around a long-form field.
type RichText struct {
	Data map[string]*string `yaml:"data"`
}

// JSONList is the CMS wrapper around a JSON array of strings.
type JSONList struct {
	Values []string `yaml:"strapi_json_value"`
}

type AboutRecord struct {
	AboutContent *RichText `yaml:"about_content"`
	MainSkills   *JSONList `yaml:"main_skills"`
}

type HeroRecord struct {
	TagLine   *string   `yaml:"tag_line"`
	HeroAbout *RichText `yaml:"hero_about"`
}

type JobRecord struct {
	Title       *string   `yaml:"title"`
	Company     *string   `yaml:"company"`
	DateRange   *string   `yaml:"dateRange"`
	Description *RichText `yaml:"description"`
}

type ProjectRecord struct {
	Title       *string   `yaml:"title"`
	Description *RichText `yaml:"description"`
	Tech        *JSONList `yaml:"tech"`
}

type EventRecord struct {
	Title    *string   `yaml:"title"`
	Date     *string   `yaml:"date"`
	Location *string   `yaml:"location"`
	Content  *RichText `yaml:"content"`
}

// Text returns the named field of a rich text block, or "" when any level is absent.
func (r *RichText) Text(field string) string {
	if r == nil || r.Data == nil {
		return ""
	}
	return str(r.Data[field])
}

// List returns the wrapped strings, or nil when absent.
func (l *JSONList) List() []string {
	if l == nil {
		return nil
	}
	return l.Values
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
