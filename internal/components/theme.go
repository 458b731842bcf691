package components

import (
	"fmt"
	"sort"
	"strings"
)

// Palette holds the brand colors as CSS hex values.
type Palette struct {
	Primary       string
	PrimaryLight  string
	PrimaryDark   string
	Secondary     string
	SecondaryLite string
	Success       string
	Warning       string
	Error         string
	Background    string
	Paper         string
	Text          string
	TextMuted     string
}

// Theme is one selectable color scheme.
type Theme struct {
	Name    string
	Label   string
	Palette Palette
}

var (
	LightTheme = Theme{
		Name:  "bigeen-light",
		Label: "Light",
		Palette: Palette{
			Primary:       "#1a237e",
			PrimaryLight:  "#1f0ed7",
			PrimaryDark:   "#000051",
			Secondary:     "#032967",
			SecondaryLite: "#6CB4FF",
			Success:       "#10B981",
			Warning:       "#F59E0B",
			Error:         "#EF4444",
			Background:    "#F8FAFC",
			Paper:         "#FFFFFF",
			Text:          "#0F172A",
			TextMuted:     "#64748B",
		},
	}
	DarkTheme = Theme{
		Name:  "bigeen-dark",
		Label: "Dark",
		Palette: Palette{
			Primary:       "#818CF8",
			PrimaryLight:  "#A5B4FC",
			PrimaryDark:   "#4F46E5",
			Secondary:     "#6CB4FF",
			SecondaryLite: "#93C5FD",
			Success:       "#34D399",
			Warning:       "#FBBF24",
			Error:         "#F87171",
			Background:    "#0F172A",
			Paper:         "#1E293B",
			Text:          "#F1F5F9",
			TextMuted:     "#94A3B8",
		},
	}
	Themes = []Theme{LightTheme, DarkTheme}
)

// Gradients are the named linear gradients used by cards and avatars.
var Gradients = map[string]string{
	"primary": "linear-gradient(135deg, #1a237e 0%, #3B82F6 100%)",
	"accent":  "linear-gradient(135deg, #7C3AED 0%, #3B82F6 100%)",
	"dark":    "linear-gradient(135deg, #0F172A 0%, #1E293B 100%)",
	"violet":  "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"ocean":   "linear-gradient(135deg, #3B82F6 0%, #06B6D4 100%)",
	"sunset":  "linear-gradient(135deg, #F59E0B 0%, #EF4444 100%)",
	"success": "linear-gradient(135deg, #10B981 0%, #059669 100%)",
}

// Gradient resolves name, falling back to the accent gradient.
func Gradient(name string) string {
	if g, ok := Gradients[name]; ok {
		return g
	}
	return Gradients["accent"]
}

func (p Palette) vars() []string {
	return []string{
		"--color-primary:" + p.Primary,
		"--color-primary-light:" + p.PrimaryLight,
		"--color-primary-dark:" + p.PrimaryDark,
		"--color-secondary:" + p.Secondary,
		"--color-secondary-light:" + p.SecondaryLite,
		"--color-success:" + p.Success,
		"--color-warning:" + p.Warning,
		"--color-error:" + p.Error,
		"--color-bg:" + p.Background,
		"--color-paper:" + p.Paper,
		"--color-text:" + p.Text,
		"--color-text-muted:" + p.TextMuted,
	}
}

// ThemeCSS renders the custom properties for every theme and gradient.
func ThemeCSS() string {
	var b strings.Builder
	for i, t := range Themes {
		selector := fmt.Sprintf(`[data-theme="%s"]`, t.Name)
		if i == 0 {
			selector = ":root," + selector
		}
		fmt.Fprintf(&b, "%s{%s}", selector, strings.Join(t.Palette.vars(), ";"))
	}

	names := make([]string, 0, len(Gradients))
	for name := range Gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	b.WriteString(":root{")
	for _, name := range names {
		fmt.Fprintf(&b, "--gradient-%s:%s;", name, Gradients[name])
	}
	b.WriteString("}")
	return b.String()
}
