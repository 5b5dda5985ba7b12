package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Options Basics", "options-basics"},
		{"Intro to  Technical   Analysis", "intro-to-technical-analysis"},
		{"Q2 2026: Market Outlook!", "q2-2026-market-outlook"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"UPPERCASE", "uppercase"},
		{"already-a-slug", "already-a-slug"},
		{"___", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title: %q", tt.title)
	}
}

func TestSlugWithSuffix(t *testing.T) {
	assert.Equal(t, "options-basics-2", SlugWithSuffix("options-basics", 1))
	assert.Equal(t, "options-basics-4", SlugWithSuffix("options-basics", 3))
}
