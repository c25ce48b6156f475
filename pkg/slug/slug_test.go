// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trananh/movira/pkg/slug"
)

/*
TestFrom verifies the normalization pipeline for common title shapes.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "The Godfather", "the-godfather"},
		{"accents_removed", "Amélie", "amelie"},
		{"punctuation", "Spider-Man: No Way Home", "spider-man-no-way-home"},
		{"multiple_spaces", "2001:  A Space   Odyssey", "2001-a-space-odyssey"},
		{"leading_trailing", "  ...Dune...  ", "dune"},
		{"digits_kept", "Se7en", "se7en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

/*
TestUnique_NoCollision returns the base slug when nothing is taken.
*/
func TestUnique_NoCollision(t *testing.T) {
	result := slug.Unique("Blade Runner", func(string) bool { return false })
	assert.Equal(t, "blade-runner", result)
}

/*
TestUnique_Suffixing appends incrementing suffixes until a free slug is found.
*/
func TestUnique_Suffixing(t *testing.T) {
	taken := map[string]bool{
		"dune":   true,
		"dune-1": true,
	}

	result := slug.Unique("Dune", func(candidate string) bool { return taken[candidate] })
	assert.Equal(t, "dune-2", result)
}

/*
TestUnique_EmptyInput falls back to a non-empty base before disambiguating.
*/
func TestUnique_EmptyInput(t *testing.T) {
	result := slug.Unique("???", func(string) bool { return false })
	assert.Equal(t, "untitled", result)
}

/*
TestUnique_TwoFilmsSameTitle simulates two imports whose titles normalize to
the same base slug and asserts the stored slugs never collide.
*/
func TestUnique_TwoFilmsSameTitle(t *testing.T) {
	stored := map[string]bool{}
	taken := func(candidate string) bool { return stored[candidate] }

	first := slug.Unique("Nosferatu", taken)
	stored[first] = true

	second := slug.Unique("Nosferatu", taken)
	stored[second] = true

	assert.Equal(t, "nosferatu", first)
	assert.Equal(t, "nosferatu-1", second)
	assert.NotEqual(t, first, second)
}
