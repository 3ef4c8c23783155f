package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma string", "Blog, Gallery", []string{"Blog", "Gallery"}},
		{"padded elements", "  SEO ,Shop  ,  Blog", []string{"SEO", "Shop", "Blog"}},
		{"single", "Blog", []string{"Blog"}},
		{"array", []any{"Blog", "Gallery"}, []string{"Blog", "Gallery"}},
		{"array with number", []any{"Blog", float64(3)}, []string{"Blog", "3"}},
		{"absent", nil, []string{}},
		{"number", float64(42), []string{}},
		{"object", map[string]any{"a": "b"}, []string{}},
		{"bool", true, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringList(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberValue(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		present bool
		want    float64
		wantNaN bool
	}{
		{"numeric string", "500", true, 500, false},
		{"padded string", " 12.5 ", true, 12.5, false},
		{"empty string", "", true, 0, false},
		{"number", float64(750), true, 750, false},
		{"json number", json.Number("99"), true, 99, false},
		{"true", true, true, 1, false},
		{"null", nil, true, 0, false},
		{"absent", nil, false, 0, true},
		{"garbage", "five hundred", true, 0, true},
		{"single element array", []any{"5"}, true, 5, false},
		{"single number array", []any{float64(7)}, true, 7, false},
		{"empty array", []any{}, true, 0, false},
		{"two element array", []any{"1", "2"}, true, 0, true},
		{"bool in array", []any{true}, true, 0, true},
		{"object", map[string]any{"v": "1"}, true, 0, true},
		{"exponent", "1.5e3", true, 1500, false},
		{"leading dot", ".5", true, 0.5, false},
		{"signed", "-42", true, -42, false},
		{"hex", "0x10", true, 16, false},
		{"octal", "0o17", true, 15, false},
		{"binary", "0b11", true, 3, false},
		{"signed hex", "-0x10", true, 0, true},
		{"bad hex digit", "0xZZ", true, 0, true},
		{"binary digit out of range", "0b12", true, 0, true},
		{"underscore", "1_000", true, 0, true},
		{"lowercase inf", "inf", true, 0, true},
		{"infinity spelled lowercase", "infinity", true, 0, true},
		{"nan literal", "NaN", true, 0, true},
		{"hex float", "0x1p-2", true, 0, true},
		{"lone dot", ".", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberValue(tt.in, tt.present)
			if tt.wantNaN {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberValueInfinity(t *testing.T) {
	tests := []struct {
		in   string
		sign int
	}{
		{"Infinity", 1},
		{"+Infinity", 1},
		{"-Infinity", -1},
		{"1e400", 1},
		{"-1e400", -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, math.IsInf(NumberValue(tt.in, true), tt.sign))
		})
	}
}

func TestNewSubmission(t *testing.T) {
	sub := NewSubmission(map[string]any{
		"websiteType": "Portfolio",
		"buildMethod": "Template",
		"features":    "Blog, Gallery",
		"budget":      "500",
		"deadline":    "2 weeks",
		"email":       "a@b.com",
		"isAdmin":     true,
	})

	assert.Equal(t, "Portfolio", sub.WebsiteType)
	assert.Equal(t, "Template", sub.BuildMethod)
	assert.Equal(t, []string{"Blog", "Gallery"}, sub.Features)
	assert.Equal(t, float64(500), sub.Budget)
	assert.Equal(t, "2 weeks", sub.Deadline)
	assert.Equal(t, "a@b.com", sub.Email)
	assert.Nil(t, sub.BrandName)
	assert.Nil(t, sub.AdditionalImages)
	assert.True(t, sub.ID.IsZero())
}

func TestNewSubmissionMissingFields(t *testing.T) {
	sub := NewSubmission(map[string]any{})
	assert.Equal(t, []string{}, sub.Features)
	assert.True(t, math.IsNaN(sub.Budget))
	assert.Empty(t, sub.WebsiteType)
}

func TestNewBranding(t *testing.T) {
	b := NewBranding(map[string]any{
		"brandName":        "Acme",
		"logoUrl":          "https://cdn.example.com/logo.png",
		"additionalImages": []any{"a.png", "b.png"},
		"contactInfo":      nil,
	})

	require.NotNil(t, b.BrandName)
	assert.Equal(t, "Acme", *b.BrandName)
	require.NotNil(t, b.LogoURL)
	assert.Nil(t, b.ColorPreferences)
	assert.Nil(t, b.ContactInfo)
	assert.Equal(t, []string{"a.png", "b.png"}, b.AdditionalImages)

	empty := NewBranding(map[string]any{})
	assert.Nil(t, empty.AdditionalImages)
}
