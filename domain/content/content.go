// Package content holds the marketing copy of the site and the display modes
// that select between its two framings.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Site is the full set of copy rendered by the pages.
type Site struct {
	Name        string               `yaml:"name"`
	Tagline     string               `yaml:"tagline"`
	Modes       map[Mode]ModeContent `yaml:"modes"`
	Nav         []Link               `yaml:"nav"`
	Footer      []LinkSection        `yaml:"footer"`
	FAQs        []FAQ                `yaml:"faqs"`
	ContactInfo []ContactInfo        `yaml:"contact_info"`
	Team        []TeamMember         `yaml:"team"`
	Stats       []Stat               `yaml:"stats"`
	Roadmap     []RoadmapItem        `yaml:"roadmap"`
	Projects    []Project            `yaml:"projects"`
}

// ModeContent is the copy that changes with the display mode.
type ModeContent struct {
	Hero               Hero      `yaml:"hero"`
	Features           []Feature `yaml:"features"`
	MessagePlaceholder string    `yaml:"message_placeholder"`
}

type Hero struct {
	Headline     string `yaml:"headline"`
	Subhead      string `yaml:"subhead"`
	CTAPrimary   string `yaml:"cta_primary"`
	CTASecondary string `yaml:"cta_secondary"`
}

type Feature struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type LinkSection struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type ContactInfo struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type TeamMember struct {
	Name     string            `yaml:"name"`
	Role     string            `yaml:"role"`
	Initials string            `yaml:"initials"`
	Gradient string            `yaml:"gradient"`
	ImageURL string            `yaml:"image_url"`
	Socials  map[string]string `yaml:"socials"`
}

type Stat struct {
	Value  string `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
	Icon   string `yaml:"icon"`
}

type RoadmapItem struct {
	Label       string `yaml:"label"`
	LabelColor  string `yaml:"label_color"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Votes       int    `yaml:"votes"`
	Views       int    `yaml:"views"`
	Status      string `yaml:"status"`
}

type Project struct {
	Category      string `yaml:"category"`
	CategoryColor string `yaml:"category_color"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
}

// ForMode returns the copy for mode, falling back to the default mode.
func (s *Site) ForMode(mode Mode) ModeContent {
	if mc, ok := s.Modes[mode]; ok {
		return mc
	}
	return s.Modes[DefaultMode]
}

// Parse decodes and validates a YAML copy document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Default returns the embedded copy.
func Default() *Site {
	site, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return site
}

func (s *Site) validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for _, m := range Modes() {
		mc, ok := s.Modes[m]
		if !ok {
			errs = append(errs, fmt.Errorf("mode %q is missing", m))
			continue
		}
		if mc.Hero.Headline == "" {
			errs = append(errs, fmt.Errorf("mode %q: hero headline is required", m))
		}
	}
	for mode := range s.Modes {
		if _, err := ParseMode(string(mode)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
