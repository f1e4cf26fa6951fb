package catalog

// Module is one instructional unit: content to read plus a quiz.
// Modules are immutable once loaded; ordering in the catalog is the
// canonical learning path.
type Module struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Icon      string     `json:"icon"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// iconGlyphs maps a module's icon key to its decorative glyph. Unknown
// keys fall back to a neutral marker rather than dispatching on titles.
var iconGlyphs = map[string]string{
	"people": "웃",
	"globe":  "◉",
	"key":    "⚿",
	"shield": "▣",
}

// Glyph returns the decorative glyph for the module's icon key.
func (m *Module) Glyph() string {
	if g, ok := iconGlyphs[m.Icon]; ok {
		return g
	}
	return "▪"
}
