package catalog

// Message is one raw UI string found in a source file.
type Message struct {
	Key     string   // Explicit key (empty means natural-language key)
	Source  string   // Raw markup, e.g. "Hello, <b>{{name}}</b>"
	File    string   // File the message came from
	Line    int      // Source line/page (0 if N/A)
	Section []string // Heading hierarchy, e.g. ["Checkout", "Payment"]
}

// Entry is a message converted to i18next placeholder text.
type Entry struct {
	Key          string `json:"key"`
	Value        string `json:"value"`
	Source       string `json:"source"`
	File         string `json:"file,omitempty"`
	Line         int    `json:"line,omitempty"`
	Placeholders int    `json:"placeholders"`
}

// Conflict records a key that was seen again with a different value.
type Conflict struct {
	Key     string `json:"key"`
	Kept    string `json:"kept"`
	Dropped string `json:"dropped"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// Catalog is the ordered, de-duplicated set of entries built from messages.
type Catalog struct {
	Entries   []Entry    `json:"entries"`
	Conflicts []Conflict `json:"conflicts"`
}

// Lookup returns the entry stored under key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
