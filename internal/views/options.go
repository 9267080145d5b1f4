package views

import (
	"fmt"
	"strings"
)

// RenderEffectOptions renders the category select's option elements,
// marking selected when it is one of the options.
func RenderEffectOptions(options []string, selected string) string {
	var b strings.Builder
	for _, opt := range options {
		attr := ""
		if opt == selected {
			attr = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, Escape(opt), attr, Escape(opt))
	}
	return b.String()
}
