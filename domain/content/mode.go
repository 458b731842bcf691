package content

import (
	"fmt"
	"strings"
)

// Mode selects which framing of the site is shown.
type Mode string

const (
	ModeTech    Mode = "tech"
	ModeConsult Mode = "consult"

	DefaultMode = ModeTech
)

// Modes lists every mode in switch order.
func Modes() []Mode {
	return []Mode{ModeTech, ModeConsult}
}

// ParseMode converts a raw value to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeTech, ModeConsult:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Label is the switch label for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeConsult:
		return "Consulting"
	default:
		return "Technology"
	}
}

var (
	softwareTopics = []string{
		"Web Application Development",
		"Mobile App Development",
		"SaaS Product Build",
		"API Integration",
		"Technical Support",
		"Other",
	}

	consultingTopics = []string{
		"Technical Audit",
		"Architecture Design",
		"Team Augmentation",
		"Digital Strategy",
		"Process Optimization",
		"Other",
	}
)

// TopicOptions returns the ordered contact topics for mode. Unknown modes get the
// software list. The returned slice is a copy.
func TopicOptions(mode Mode) []string {
	src := softwareTopics
	if mode == ModeConsult {
		src = consultingTopics
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
