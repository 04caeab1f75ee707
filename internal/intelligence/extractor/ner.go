package extractor

// NamedEntity is one recognizer hit: the matched text span and its label.
type NamedEntity struct {
	Text  string
	Label string
}

// Labels contributed to party extraction.
const (
	LabelPerson       = "PERSON"
	LabelOrganization = "ORG"
)

// NERModel is an optional statistical name/organization recognizer.  The
// extractor works identically without one, minus the recognizer's party
// contribution; implementations must never fail the extraction, so
// Entities returns no error and reports nothing on internal trouble.
type NERModel interface {
	Entities(text string) []NamedEntity
}

// nopNER contributes nothing.  It is the default model when no
// recognizer is configured.
type nopNER struct{}

func (nopNER) Entities(string) []NamedEntity { return nil }

// NewNopNER returns the no-op recognizer.
func NewNopNER() NERModel { return nopNER{} }
