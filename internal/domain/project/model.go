package project

// Record is a free-form JSON object.
type Record = map[string]any

// AcademicLevel identifies the kind of academic work being written.
type AcademicLevel string

const (
	LevelDiploma  AcademicLevel = "D3"
	LevelBachelor AcademicLevel = "S1"
	LevelMaster   AcademicLevel = "S2"
	LevelDoctoral AcademicLevel = "S3"
)

// Document is the academic writing project held by the Store. Values below
// the top-level keys are kept exactly as decoded.
type Document struct {
	Title             string `json:"title"`
	AuthorInfo        any    `json:"authorInfo"`
	Outline           any    `json:"outline"`
	Chapters          []any  `json:"chapters"`
	Bibliography      []any  `json:"bibliography"`
	Appendices        []any  `json:"appendices"`
	StatementPageData any    `json:"statementPageData"`
	ApprovalData      any    `json:"approvalData"`
	Preface           string `json:"preface"`
	Abstract          string `json:"abstract"`
}

// State is a point-in-time view of the Store.
type State struct {
	Document *Document `json:"document"`
	Creating bool      `json:"creating"`
	Cooldown bool      `json:"cooldown"`
}

// ExportResult describes a produced export file.
type ExportResult struct {
	FileName string `json:"file_name"`
	Location string `json:"location,omitempty"`
	Content  []byte `json:"-"`
}
