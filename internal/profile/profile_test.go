package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "two words", input: "Ana Paula"},
		{name: "empty", input: ""},
		{name: "accented letters", input: "João Conceição"},
		{name: "digits", input: "Ana123", wantErr: true},
		{name: "underscore", input: "Ana_Paula", wantErr: true},
		{name: "only spaces", input: "   ", wantErr: true},
		{name: "quote", input: `Ana"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestColorCode(t *testing.T) {
	assert.Equal(t, 30, ColorCode("black"))
	assert.Equal(t, 34, ColorCode("blue"))
	assert.Equal(t, 34, ColorCode("Blue"))
	assert.Equal(t, 37, ColorCode("white"))
	assert.Equal(t, 32, ColorCode("chartreuse"), "unknown colors use green")
	assert.Equal(t, 32, ColorCode(""))
	assert.Equal(t, 4, ANSIIndex("blue"))
}

func TestDefault_DisplaysFallbackName(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FallbackName, cfg.DisplayName())
	assert.Equal(t, "standard", cfg.BannerFont())
	assert.Equal(t, PromptStyles[0], cfg.PromptStyleLabel())
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Name:        "Lua",
		BannerStyle: 42,
		BannerColor: "plaid",
		Style:       -1,
		Color:       "cyan",
		Password:    "left over",
	}

	got := cfg.Normalize()

	assert.Equal(t, "Lua", got.Name)
	assert.Equal(t, 0, got.BannerStyle)
	assert.Equal(t, DefaultColor, got.BannerColor)
	assert.Equal(t, 0, got.Style)
	assert.Equal(t, "cyan", got.Color)
	assert.Empty(t, got.Password)
}

func TestNormalize_KeepsValidRecord(t *testing.T) {
	cfg := Config{
		Name:            "Ana Paula",
		BannerStyle:     len(BannerStyles) - 1,
		BannerColor:     "magenta",
		Style:           len(PromptStyles) - 1,
		Color:           "white",
		PasswordEnabled: true,
		Password:        "secret",
	}
	assert.Equal(t, cfg, cfg.Normalize())
}

func TestPromptSegments(t *testing.T) {
	cfg := Default()
	cfg.Name = "Lua"
	cfg.Color = "blue"

	cfg.Style = 2
	segs := cfg.PromptSegments()
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: "Doctor@", Color: "green"}, segs[0])
	assert.Equal(t, Segment{Text: "Lua", Color: "blue"}, segs[1])
	assert.Equal(t, Segment{Text: "> "}, segs[2])

	cfg.Style = 1
	assert.Equal(t, []Segment{
		{Text: "Lua", Color: "blue"},
		{Text: ""},
		{Text: "$", Color: "blue"},
		{Text: " "},
	}, cfg.PromptSegments())

	cfg.Style = 4
	assert.Equal(t, []Segment{{Text: "$ "}}, cfg.PromptSegments())

	cfg.Style = 99
	out := cfg.PromptSegments()
	require.Len(t, out, 2)
	assert.Equal(t, "Lua", out[0].Text)
	assert.False(t, out[1].Colored())
}
