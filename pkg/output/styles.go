package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// StyleDef is one style override in the YAML styles file
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	ColorLight string `yaml:"light,omitempty"`
	ColorDark  string `yaml:"dark,omitempty"`
}

// stylesFile is the top-level YAML document shape
type stylesFile struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

// Semantic style names used by the renderer.
const (
	StyleHeader    = "Header"
	StyleRuleName  = "RuleName"
	StyleCondition = "Condition"
	StyleEffect    = "Effect"
	StyleMuted     = "Muted"
	StyleError     = "Error"
)

// styleRegistry maps semantic names to lipgloss styles. Defaults use
// adaptive colors so output reads on both light and dark terminals.
var styleRegistry = map[string]lipgloss.Style{
	StyleHeader: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}),
	StyleRuleName: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fd7ff"}),
	StyleCondition: lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#5f5f00", Dark: "#d7d75f"}),
	StyleEffect: lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#005f00", Dark: "#87d787"}),
	StyleMuted: lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8a8a8a"}),
	StyleError: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"}),
}

// GetStyle returns the style registered under name, or an empty style
func GetStyle(name string) lipgloss.Style {
	if style, ok := styleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// LoadStyles applies style overrides from a YAML file on top of defaults
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file: %w", err)
	}

	var parsed stylesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse styles file: %w", err)
	}

	for name, def := range parsed.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		switch {
		case def.ColorLight != "" || def.ColorDark != "":
			style = style.Foreground(lipgloss.AdaptiveColor{
				Light: def.ColorLight,
				Dark:  def.ColorDark,
			})
		case def.Foreground != "":
			style = style.Foreground(lipgloss.Color(def.Foreground))
		}
		styleRegistry[name] = style
	}

	return nil
}
