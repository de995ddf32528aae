// Package content loads the landing page copy from a YAML document.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent wraps every structural problem found in a content file.
var ErrInvalidContent = errors.New("content: invalid site document")

// Link is a label and a target.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Brand is the product identity shown in the navbar and footer.
type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// Hero is the first screen of the landing page.
type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Title        string `yaml:"title"`
	Highlight    string `yaml:"highlight"`
	Subtitle     string `yaml:"subtitle"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
}

// Stat is a headline number.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Feature is a product capability card. Icon is inline SVG markup.
type Feature struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Icon  string `yaml:"icon"`
}

// Step is one stage of the installation walkthrough.
type Step struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// FAQ is a question with its answer.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// CallToAction closes the landing page.
type CallToAction struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Button Link   `yaml:"button"`
}

// FooterColumn groups footer links under a heading.
type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Footer is shared by the landing page and the auth screens.
type Footer struct {
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
}

// Site is the whole landing page document.
type Site struct {
	Brand        Brand         `yaml:"brand"`
	Nav          []Link        `yaml:"nav"`
	Hero         Hero          `yaml:"hero"`
	Stats        []Stat        `yaml:"stats"`
	Features     []Feature     `yaml:"features"`
	Steps        []Step        `yaml:"steps"`
	Testimonials []Testimonial `yaml:"testimonials"`
	FAQs         []FAQ         `yaml:"faqs"`
	CTA          CallToAction  `yaml:"cta"`
	Footer       Footer        `yaml:"footer"`
}

// Load reads and validates the site document at path inside fsys. Feature
// icons are sanitised so only inert SVG survives.
func Load(fsys fs.FS, path string) (*Site, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a site document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}

	if err := site.validate(); err != nil {
		return nil, err
	}

	for i := range site.Features {
		site.Features[i].Icon = SanitizeIcon(site.Features[i].Icon)
	}
	return &site, nil
}

func (s *Site) validate() error {
	var problems []string
	if strings.TrimSpace(s.Brand.Name) == "" {
		problems = append(problems, "brand.name is empty")
	}
	if strings.TrimSpace(s.Hero.Title) == "" {
		problems = append(problems, "hero.title is empty")
	}
	for i, f := range s.Features {
		if strings.TrimSpace(f.Title) == "" {
			problems = append(problems, fmt.Sprintf("features[%d].title is empty", i))
		}
	}
	for i, l := range s.Nav {
		if l.Href == "" {
			problems = append(problems, fmt.Sprintf("nav[%d].href is empty", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}
