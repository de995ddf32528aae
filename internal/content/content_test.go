package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSite = `
brand:
  name: Helios
  tagline: Power from the rooftop
nav:
  - label: Features
    href: "#features"
hero:
  title: Cut your electricity bill
  highlight: by up to 90%
features:
  - title: Live monitoring
    body: See generation in real time.
    icon: |
      <svg viewBox="0 0 24 24" onload="alert(1)"><path d="M3 12h18"/><script>alert(1)</script></svg>
faqs:
  - question: Does it work on cloudy days?
    answer: Yes, at reduced output.
`

func TestParse(t *testing.T) {
	site, err := Parse([]byte(sampleSite))
	require.NoError(t, err)

	assert.Equal(t, "Helios", site.Brand.Name)
	assert.Equal(t, "#features", site.Nav[0].Href)
	require.Len(t, site.Features, 1)
	require.Len(t, site.FAQs, 1)
	assert.Equal(t, "Does it work on cloudy days?", site.FAQs[0].Question)

	icon := site.Features[0].Icon
	assert.Contains(t, icon, `d="M3 12h18"`)
	assert.NotContains(t, icon, "onload")
	assert.NotContains(t, icon, "<script")
}

func TestParse_RejectsIncompleteDocument(t *testing.T) {
	_, err := Parse([]byte("hero:\n  subtitle: no title\nfeatures:\n  - body: untitled\n"))

	require.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), "brand.name is empty")
	assert.Contains(t, err.Error(), "hero.title is empty")
	assert.Contains(t, err.Error(), "features[0].title is empty")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("brand: [unterminated"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidContent)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"content/site.yaml": &fstest.MapFile{Data: []byte(sampleSite)},
	}

	site, err := Load(fsys, "content/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Cut your electricity bill", site.Hero.Title)

	_, err = Load(fsys, "content/missing.yaml")
	assert.Error(t, err)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Asha", SanitizeText(" <b>Asha</b> "))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
}
