// Package content holds the portfolio data rendered by the UI: profile,
// skills, projects, experience, certifications and impact metrics.
//
// Content is read-only once loaded. It comes from a YAML file or from the
// built-in Default.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/folio/pkg/metrics"
)

// ErrMissingField is wrapped by every Validate failure.
var ErrMissingField = errors.New("missing required field")

// Social links shown in the header and footer.
type Social struct {
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
}

// Building is the "currently building" card in the hero.
type Building struct {
	Headline string `yaml:"headline,omitempty" json:"headline,omitempty"`
	Detail   string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Profile is the person the page is about.
type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Title        string   `yaml:"title" json:"title"`
	Tagline      string   `yaml:"tagline" json:"tagline"`
	Location     string   `yaml:"location,omitempty" json:"location,omitempty"`
	Email        string   `yaml:"email" json:"email"`
	ResumeURL    string   `yaml:"resume_url,omitempty" json:"resume_url,omitempty"`
	Social       Social   `yaml:"social,omitempty" json:"social,omitempty"`
	Availability string   `yaml:"availability,omitempty" json:"availability,omitempty"`
	Highlights   []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Building     Building `yaml:"building,omitempty" json:"building,omitempty"`
}

// SkillGroup is a labelled list of skills.
type SkillGroup struct {
	Group string   `yaml:"group" json:"group"`
	Items []string `yaml:"items" json:"items"`
}

// Project is one project card.
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech,omitempty" json:"tech,omitempty"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
	Repo        string   `yaml:"repo,omitempty" json:"repo,omitempty"`
}

// ExperienceEntry is one role.
type ExperienceEntry struct {
	Role    string   `yaml:"role" json:"role"`
	Company string   `yaml:"company" json:"company"`
	Period  string   `yaml:"period" json:"period"`
	Bullets []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
}

// ImpactMetric is a single headline number.
type ImpactMetric struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Content is everything the page shows.
type Content struct {
	Profile        Profile           `yaml:"profile" json:"profile"`
	Skills         []SkillGroup      `yaml:"skills,omitempty" json:"skills,omitempty"`
	Projects       []Project         `yaml:"projects,omitempty" json:"projects,omitempty"`
	Experience     []ExperienceEntry `yaml:"experience,omitempty" json:"experience,omitempty"`
	Certifications []string          `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	Impact         []ImpactMetric    `yaml:"impact,omitempty" json:"impact,omitempty"`
}

// LoadFrom reads and validates content from a YAML file.
func LoadFrom(path string) (Content, error) {
	defer metrics.Timer(metrics.ContentLoad)()

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("parsing content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks that every required field is present. It does not look
// at the values beyond that.
func (c Content) Validate() error {
	var missing []string
	need := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	need("profile.name", c.Profile.Name)
	need("profile.title", c.Profile.Title)
	need("profile.tagline", c.Profile.Tagline)
	need("profile.email", c.Profile.Email)

	for i, g := range c.Skills {
		need(fmt.Sprintf("skills[%d].group", i), g.Group)
	}
	for i, p := range c.Projects {
		need(fmt.Sprintf("projects[%d].name", i), p.Name)
		need(fmt.Sprintf("projects[%d].description", i), p.Description)
	}
	for i, e := range c.Experience {
		need(fmt.Sprintf("experience[%d].role", i), e.Role)
		need(fmt.Sprintf("experience[%d].company", i), e.Company)
		need(fmt.Sprintf("experience[%d].period", i), e.Period)
	}
	for i, m := range c.Impact {
		need(fmt.Sprintf("impact[%d].label", i), m.Label)
		need(fmt.Sprintf("impact[%d].value", i), m.Value)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// FeaturedSkills returns up to n items of the first skill group, used by the
// hero's "currently building" card.
func (c Content) FeaturedSkills(n int) []string {
	if len(c.Skills) == 0 || n <= 0 {
		return nil
	}
	items := c.Skills[0].Items
	if len(items) > n {
		items = items[:n]
	}
	return items
}
