package question

// Document is the on-disk catalog format loaded from JSON or YAML.
type Document struct {
	Version   int     `json:"version" yaml:"version"`
	Questions []Entry `json:"questions" yaml:"questions"`
}

// Entry is a single question as written in a catalog file.
type Entry struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Type    string   `json:"type" yaml:"type"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// DocumentFor converts a catalog back into its file representation.
func DocumentFor(catalog *Catalog) Document {
	doc := Document{Version: 1}
	for _, q := range catalog.Questions() {
		entry := Entry{ID: q.ID(), Type: string(q.Kind()), Text: q.Text()}
		if chooser, ok := q.(Chooser); ok {
			entry.Options = chooser.Options()
		}
		doc.Questions = append(doc.Questions, entry)
	}
	return doc
}
