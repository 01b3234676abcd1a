package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_examples(t *testing.T) {
	assert.Equal(t, "backend-engineer", Slugify("Backend Engineer"))
	assert.Equal(t, "senior-frontend-developer", Slugify("Senior Frontend Developer"))
	assert.Equal(t, "c-engineer-core", Slugify("C++ Engineer (Core)"))
	assert.Equal(t, "devops-sre", Slugify("  DevOps / SRE!  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSlugify_charset(t *testing.T) {
	titles := []string{
		"Backend Engineer",
		"Sr. Software Engineer -- Платформа",
		"QA   Engineer\t(Contract)",
		"---hyphens--everywhere---",
		"123 Numbers & Symbols #!@",
	}

	for _, title := range titles {
		slug := Slugify(title)
		for _, r := range slug {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, valid, "slug %q from %q contains invalid rune %q", slug, title, r)
		}
		assert.NotContains(t, slug, "--", "slug %q has a hyphen run", slug)
		if slug != "" {
			assert.NotEqual(t, byte('-'), slug[0], "slug %q has leading hyphen", slug)
			assert.NotEqual(t, byte('-'), slug[len(slug)-1], "slug %q has trailing hyphen", slug)
		}
	}
}

func TestSlugify_idempotent(t *testing.T) {
	titles := []string{
		"Backend Engineer",
		"Senior Frontend Developer",
		"C++ Engineer (Core)",
		"  DevOps / SRE!  ",
	}
	for _, title := range titles {
		slug := Slugify(title)
		assert.Equal(t, slug, Slugify(slug))
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
