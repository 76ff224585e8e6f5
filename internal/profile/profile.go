// Package profile defines the persisted customization record and the fixed
// lookup tables (banner fonts, colors, prompt layouts) it indexes into.
//
// Everything here is pure: no file or terminal access. The store, script and
// preview packages all read the same tables so that the menu, the generated
// shell script and the on-screen preview agree on what each index means.
package profile

import (
	"errors"
	"strings"
	"unicode"
)

// FallbackName is displayed and rendered whenever Config.Name is empty.
const FallbackName = "Doctor"

// DefaultColor is used when a color name is missing or unrecognized.
const DefaultColor = "green"

// ErrInvalidName is returned by ValidateName for names containing anything
// other than letters and spaces.
var ErrInvalidName = errors.New("name must contain only letters and spaces")

// Config is the single persisted customization record.
// Field order matches the on-disk key order.
type Config struct {
	Name            string `json:"name"`
	BannerStyle     int    `json:"banner_style"`
	BannerColor     string `json:"banner_color"`
	Style           int    `json:"style"`
	Color           string `json:"color"`
	PasswordEnabled bool   `json:"password_enabled"`
	Password        string `json:"password"`
}

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Name:            "",
		BannerStyle:     0,
		BannerColor:     DefaultColor,
		Style:           0,
		Color:           DefaultColor,
		PasswordEnabled: false,
		Password:        "",
	}
}

// DisplayName returns the configured name, or FallbackName when it is empty.
func (c Config) DisplayName() string {
	if c.Name == "" {
		return FallbackName
	}
	return c.Name
}

// BannerFont returns the FIGlet font name for the configured banner style.
// Out-of-range indices resolve to the first font.
func (c Config) BannerFont() string {
	if c.BannerStyle < 0 || c.BannerStyle >= len(BannerStyles) {
		return BannerStyles[0]
	}
	return BannerStyles[c.BannerStyle]
}

// PromptStyleLabel returns the human label of the configured prompt layout.
func (c Config) PromptStyleLabel() string {
	if c.Style < 0 || c.Style >= len(PromptStyles) {
		return PromptStyles[0]
	}
	return PromptStyles[c.Style]
}

// Normalize restores the record invariants: style indices inside their
// tables, known color names, and no password unless it is enabled.
// Fields that already satisfy the invariants are left untouched.
func (c Config) Normalize() Config {
	if c.BannerStyle < 0 || c.BannerStyle >= len(BannerStyles) {
		c.BannerStyle = 0
	}
	if c.Style < 0 || c.Style >= len(PromptStyles) {
		c.Style = 0
	}
	if !IsColor(c.BannerColor) {
		c.BannerColor = DefaultColor
	}
	if !IsColor(c.Color) {
		c.Color = DefaultColor
	}
	if !c.PasswordEnabled {
		c.Password = ""
	}
	return c
}

// ValidateName accepts empty names and names made of unicode letters and
// spaces. Anything else yields ErrInvalidName.
func ValidateName(name string) error {
	for _, r := range name {
		if r != ' ' && !unicode.IsLetter(r) {
			return ErrInvalidName
		}
	}
	// A name of only spaces has no letters to display.
	if name != "" && strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return nil
}
