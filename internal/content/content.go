// Package content holds the static portfolio data rendered by the pages.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// Portfolio is the full page content.
type Portfolio struct {
	Profile  Profile   `yaml:"profile"`
	Stats    []Stat    `yaml:"stats" validate:"dive"`
	About    About     `yaml:"about"`
	Projects []Project `yaml:"projects" validate:"dive"`
	Skills   Skills    `yaml:"skills"`
	Contact  Contact   `yaml:"contact"`
	Social   []Link    `yaml:"social" validate:"dive"`
}

// Profile is the hero section.
type Profile struct {
	Name       string   `yaml:"name" validate:"required"`
	Role       string   `yaml:"role" validate:"required"`
	Tagline    string   `yaml:"tagline"`
	IntroTitle string   `yaml:"intro_title"`
	Intro      []string `yaml:"intro"`
	Tags       []string `yaml:"tags"`
}

// Stat is a quick-stat tile; Link, when set, is the route it opens.
type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon"`
	Link  string `yaml:"link" validate:"omitempty,route"`
}

// About is the about page.
type About struct {
	Headline string    `yaml:"headline"`
	BioTitle string    `yaml:"bio_title"`
	Bio      []string  `yaml:"bio"`
	Tags     []string  `yaml:"tags"`
	Services []Service `yaml:"services" validate:"dive"`
}

// Service is one "what I do" card.
type Service struct {
	Title        string   `yaml:"title" validate:"required"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

// Project is one showcase entry.
type Project struct {
	Title        string   `yaml:"title" validate:"required"`
	Category     string   `yaml:"category" validate:"required,oneof=web mobile ai design"`
	Featured     bool     `yaml:"featured"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	LiveURL      string   `yaml:"live_url" validate:"omitempty,url"`
	SourceURL    string   `yaml:"source_url" validate:"omitempty,url"`
}

// Skills is the skills page.
type Skills struct {
	Headline       string          `yaml:"headline"`
	Groups         []SkillGroup    `yaml:"groups" validate:"dive"`
	Certifications []Certification `yaml:"certifications" validate:"dive"`
}

// SkillGroup is a titled set of skills.
type SkillGroup struct {
	Title  string  `yaml:"title" validate:"required"`
	Skills []Skill `yaml:"skills" validate:"dive"`
}

// Skill is one bar; Level is a percentage.
type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

// Certification is a credential tile.
type Certification struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Contact is the static side of the contact page.
type Contact struct {
	Headline     string     `yaml:"headline"`
	Info         []InfoLine `yaml:"info" validate:"dive"`
	Availability string     `yaml:"availability"`
}

// InfoLine is a label/value pair with an optional link.
type InfoLine struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Href  string `yaml:"href"`
}

// Link is an outbound link.
type Link struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required"`
}

// Categories are the project filter options, "all" first.
var Categories = []Category{
	{ID: "all", Name: "All Projects"},
	{ID: "web", Name: "Web Apps"},
	{ID: "mobile", Name: "Mobile"},
	{ID: "ai", Name: "AI/ML"},
	{ID: "design", Name: "Design"},
}

// Category is a project filter option.
type Category struct {
	ID   string
	Name string
}

// FilterProjects returns the projects in category; "all" or "" returns every
// project.
func (p *Portfolio) FilterProjects(category string) []Project {
	if category == "" || category == "all" {
		return p.Projects
	}
	var out []Project
	for _, pr := range p.Projects {
		if pr.Category == category {
			out = append(out, pr)
		}
	}
	return out
}

// TagSummary returns at most limit technologies and the count left over.
func (pr Project) TagSummary(limit int) ([]string, int) {
	if len(pr.Technologies) <= limit {
		return pr.Technologies, 0
	}
	return pr.Technologies[:limit], len(pr.Technologies) - limit
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	routePattern  = regexp.MustCompile(`^/[a-z0-9/-]*$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("route", func(fl validator.FieldLevel) bool {
			return routePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse("portfolio.yaml", defaultDocument)
}

// Load reads a portfolio from path.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a portfolio document. name is used in errors.
func Parse(name string, data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, apperrors.NewParseError(name, extractLine(err), err)
	}
	if err := validatorInstance().Struct(&p); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			field := strings.TrimPrefix(fe.Namespace(), "Portfolio.")
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
		}
		return nil, apperrors.NewValidationError("content", err.Error(), err)
	}
	return &p, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
