package project

const (
	// DefaultPreface is the placeholder used when a document has no preface.
	DefaultPreface = "<p>Tuliskan kata pengantar di sini...</p>"
	// DefaultAbstract is the placeholder used when a document has no abstract.
	DefaultAbstract = "<p>Tuliskan abstrak di sini...</p>"
)

var defaultChapterTitles = []string{
	"BAB I PENDAHULUAN",
	"BAB II TINJAUAN PUSTAKA",
	"BAB III METODOLOGI PENELITIAN",
	"BAB IV HASIL DAN PEMBAHASAN",
	"BAB V PENUTUP",
}

// DefaultDocument returns the built-in starter document.
func DefaultDocument() *Document {
	outline := make([]any, 0, len(defaultChapterTitles))
	chapters := make([]any, 0, len(defaultChapterTitles))
	for i, title := range defaultChapterTitles {
		outline = append(outline, title)
		chapters = append(chapters, Record{
			"id":      float64(i + 1),
			"title":   title,
			"content": "<p>Mulai menulis " + title + " di sini...</p>",
		})
	}

	return &Document{
		Title: "Judul Proyek Akademik",
		AuthorInfo: Record{
			"name":       "",
			"studentId":  "",
			"program":    "",
			"faculty":    "",
			"university": "",
			"supervisor": "",
			"year":       "",
		},
		Outline:           outline,
		Chapters:          chapters,
		Bibliography:      []any{},
		Appendices:        []any{},
		StatementPageData: nil,
		ApprovalData:      nil,
		Preface:           DefaultPreface,
		Abstract:          DefaultAbstract,
	}
}

// Backfill fills absent optional fields with their defaults. It is idempotent.
func Backfill(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	if doc.Bibliography == nil {
		doc.Bibliography = []any{}
	}
	if doc.Appendices == nil {
		doc.Appendices = []any{}
	}
	if doc.Preface == "" {
		doc.Preface = DefaultPreface
	}
	if doc.Abstract == "" {
		doc.Abstract = DefaultAbstract
	}
	return doc
}
