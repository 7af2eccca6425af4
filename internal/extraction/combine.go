package extraction

import "strings"

// Source is named text to combine.
type Source struct {
	Name string
	Text string
}

// Marker returns the separator that introduces text from name.
func Marker(name string) string {
	return "--- From " + name + " ---"
}

// Combine joins the non-empty texts of sources. Every text after the first
// is introduced by its Marker on a line of its own.
func Combine(sources []Source) string {
	var b strings.Builder
	for _, s := range sources {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n" + Marker(s.Name) + "\n")
		}
		b.WriteString(text)
	}
	return b.String()
}

// Sources converts extraction results for Combine.
func Sources(results []Result) []Source {
	out := make([]Source, len(results))
	for i, r := range results {
		out[i] = Source{Name: r.Name, Text: r.Text}
	}
	return out
}
