package view

var typeIcons = map[string]string{
	"Article":             "✎",
	"BlogPosting":         "✎",
	"NewsArticle":         "✎",
	"Book":                "📖",
	"Course":              "🎓",
	"Event":               "📅",
	"FAQPage":             "?",
	"HowTo":               "☰",
	"JobPosting":          "💼",
	"LocalBusiness":       "⌂",
	"Movie":               "🎬",
	"Music":               "♪",
	"Person":              "☺",
	"Product":             "🛒",
	"Recipe":              "🍴",
	"Restaurant":          "🍴",
	"Service":             "⚙",
	"SoftwareApplication": "⌘",
	"VideoObject":         "▶",
}

// IconFor returns the glyph drawn next to a schema of the given type
func IconFor(schemaType string) string {
	if icon, ok := typeIcons[schemaType]; ok {
		return icon
	}
	return "•"
}
