package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `
about:
  about_content:
    data:
      about_content: "Software engineer who likes distributed systems."
  main_skills:
    strapi_json_value: ["Python", "Go", "Kubernetes"]
hero:
  tag_line: "I build things for the web."
jobs:
  - title: Engineer
    company: Acme
    dateRange: "2022-2023"
    description:
      data:
        description: Built things
  - title: Intern
    company: Initech
projects:
  - title: Adhibot
    description:
      data:
        description: Portfolio assistant
    tech:
      strapi_json_value: ["Gemini", "Gatsby"]
  - title: Untitled
events:
  - title: GopherCon Talk
    date: "2023-09-01"
    location: Bangalore
    content:
      data:
        content: null
`

func TestAggregate_FullExport(t *testing.T) {
	data, err := Parse([]byte(sampleExport))
	require.NoError(t, err)

	snap := Aggregate(StaticSource{Data: data})

	assert.Equal(t, "Software engineer who likes distributed systems.", snap.About)
	assert.Equal(t, []string{"Python", "Go", "Kubernetes"}, snap.Skills)

	require.Len(t, snap.Jobs, 2)
	assert.Equal(t, "Engineer", snap.Jobs[0].Title)
	assert.Equal(t, "Acme", snap.Jobs[0].Company)
	assert.Equal(t, "2022-2023", snap.Jobs[0].DateRange)
	assert.Equal(t, "Built things", snap.Jobs[0].Description)
	assert.Equal(t, "Intern", snap.Jobs[1].Title)
	assert.Empty(t, snap.Jobs[1].Description)
	assert.Empty(t, snap.Jobs[1].DateRange)

	require.Len(t, snap.Projects, 2)
	assert.Equal(t, []string{"Gemini", "Gatsby"}, snap.Projects[0].Technologies)
	assert.Empty(t, snap.Projects[1].Description)
	assert.Empty(t, snap.Projects[1].Technologies)

	require.Len(t, snap.Events, 1)
	assert.Equal(t, "Bangalore", snap.Events[0].Location)
	assert.Empty(t, snap.Events[0].Description)
}

func TestAggregate_MissingData(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"nil source", nil},
		{"nil global data", StaticSource{}},
		{"empty global data", StaticSource{Data: &GlobalData{}}},
		{"about without nested fields", StaticSource{Data: &GlobalData{About: &AboutRecord{}}}},
		{"about with empty rich text", StaticSource{Data: &GlobalData{About: &AboutRecord{AboutContent: &RichText{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Aggregate(tt.src)

			assert.Empty(t, snap.About)
			assert.NotNil(t, snap.Skills)
			assert.Empty(t, snap.Skills)
			assert.NotNil(t, snap.Jobs)
			assert.NotNil(t, snap.Projects)
			assert.NotNil(t, snap.Events)
			assert.True(t, snap.IsEmpty())
		})
	}
}

func TestAggregate_PreservesOrder(t *testing.T) {
	title := func(s string) *string { return &s }
	data := &GlobalData{
		Jobs: []JobRecord{{Title: title("c")}, {Title: title("a")}, {Title: title("b")}},
	}

	snap := Aggregate(StaticSource{Data: data})

	require.Len(t, snap.Jobs, 3)
	assert.Equal(t, "c", snap.Jobs[0].Title)
	assert.Equal(t, "a", snap.Jobs[1].Title)
	assert.Equal(t, "b", snap.Jobs[2].Title)
}

func TestLoadFile(t *testing.T) {
	t.Run("existing export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

		src, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, src.Path())

		snap := Aggregate(src)
		assert.Len(t, snap.Jobs, 2)
	})

	t.Run("missing file yields empty source", func(t *testing.T) {
		src, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.True(t, Aggregate(src).IsEmpty())
	})

	t.Run("malformed export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jobs: [unterminated"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)

		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, path, srcErr.Path)
	})
}
