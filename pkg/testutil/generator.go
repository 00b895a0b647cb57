// Package testutil provides portfolio content fixtures for tests.
// All generators produce deterministic output for reproducible tests.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vanderheijden86/folio/pkg/content"
)

// GeneratorConfig controls content generation.
type GeneratorConfig struct {
	Seed        int64  // Random seed for determinism (0 = use current time)
	NamePrefix  string // Prefix for generated names (default: "Fixture")
	Projects    int
	SkillGroups int
	Experience  int
	Certs       int
	Metrics     int
}

// DefaultConfig returns a config that yields a page a few screens long.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42, // Deterministic
		NamePrefix:  "Fixture",
		Projects:    4,
		SkillGroups: 3,
		Experience:  2,
		Certs:       3,
		Metrics:     4,
	}
}

// Generator creates content fixtures.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.NamePrefix == "" {
		cfg.NamePrefix = "Fixture"
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewDefault creates a Generator with default config.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

var techPool = []string{
	"Go", "Rust", "TypeScript", "Python", "PostgreSQL", "Redis",
	"Kubernetes", "Terraform", "gRPC", "Kafka", "React", "AWS",
}

// Content generates a complete, valid portfolio.
func (g *Generator) Content() content.Content {
	p := g.cfg.NamePrefix
	c := content.Content{
		Profile: content.Profile{
			Name:         p + " Person",
			Title:        p + " Engineer",
			Tagline:      "Builds " + strings.ToLower(p) + " systems that stay up.",
			Location:     "Remote",
			Email:        strings.ToLower(p) + "@example.com",
			ResumeURL:    "https://example.com/" + strings.ToLower(p) + ".pdf",
			Availability: "Open to work",
			Social: content.Social{
				GitHub:   "https://github.com/" + strings.ToLower(p),
				LinkedIn: "https://linkedin.com/in/" + strings.ToLower(p),
			},
			Highlights: []string{"Fast", "Careful"},
			Building:   content.Building{Headline: "Currently building", Detail: "Fixtures."},
		},
	}

	for i := 0; i < g.cfg.SkillGroups; i++ {
		c.Skills = append(c.Skills, content.SkillGroup{
			Group: fmt.Sprintf("Group %d", i+1),
			Items: g.pickTech(4),
		})
	}
	for i := 0; i < g.cfg.Projects; i++ {
		c.Projects = append(c.Projects, content.Project{
			Name:        fmt.Sprintf("%s Project %d", p, i+1),
			Description: fmt.Sprintf("Project number %d, with a description long enough to wrap inside a card.", i+1),
			Tech:        g.pickTech(3),
			Link:        fmt.Sprintf("https://example.com/p%d", i+1),
		})
	}
	for i := 0; i < g.cfg.Experience; i++ {
		c.Experience = append(c.Experience, content.ExperienceEntry{
			Role:    fmt.Sprintf("Role %d", i+1),
			Company: fmt.Sprintf("Company %d", i+1),
			Period:  fmt.Sprintf("%d - %d", 2015+i*2, 2017+i*2),
			Bullets: []string{"Shipped things.", "Measured them."},
		})
	}
	for i := 0; i < g.cfg.Certs; i++ {
		c.Certifications = append(c.Certifications, fmt.Sprintf("Certification %d", i+1))
	}
	for i := 0; i < g.cfg.Metrics; i++ {
		c.Impact = append(c.Impact, content.ImpactMetric{
			Label: fmt.Sprintf("Metric %d", i+1),
			Value: fmt.Sprintf("%d%%", 10+g.rng.Intn(90)),
		})
	}
	return c
}

// pickTech picks n distinct entries from techPool.
func (g *Generator) pickTech(n int) []string {
	if n > len(techPool) {
		n = len(techPool)
	}
	idx := g.rng.Perm(len(techPool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, techPool[i])
	}
	return out
}

// ============================================================================
// Quick helpers
// ============================================================================

// QuickContent returns a default generated portfolio.
func QuickContent() content.Content {
	return NewDefault().Content()
}

// Minimal returns the smallest valid portfolio: required profile fields only.
func Minimal() content.Content {
	return content.Content{
		Profile: content.Profile{
			Name:    "Min",
			Title:   "Minimal",
			Tagline: "Nothing else.",
			Email:   "min@example.com",
		},
	}
}

// Long returns a portfolio with many projects, for scroll tests that need
// a tall page.
func Long(projects int) content.Content {
	cfg := DefaultConfig()
	cfg.Projects = projects
	return New(cfg).Content()
}
