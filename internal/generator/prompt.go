package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

var levelNames = map[project.AcademicLevel]string{
	project.LevelDiploma:  "tugas akhir (D3)",
	project.LevelBachelor: "skripsi (S1)",
	project.LevelMaster:   "tesis (S2)",
	project.LevelDoctoral: "disertasi (S3)",
}

const systemPrompt = `You draft Indonesian academic writing projects.
Reply with a single JSON object and nothing else, shaped as:
{"outline": [string], "chapters": [{"title": string, "sections": [string], "content": markdown}],
 "preface": markdown, "abstract": markdown,
 "bibliography": [{"author": string, "year": string, "title": string, "publisher": string}]}
Write in formal Bahasa Indonesia. Use five chapters unless the level calls for more.`

// BuildProjectPrompt renders the creation request into a prompt.
func BuildProjectPrompt(author project.Record, title string, level project.AcademicLevel) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Judul: %s\n", title))

	levelName, ok := levelNames[level]
	if !ok {
		levelName = string(level)
	}
	if levelName != "" {
		sb.WriteString(fmt.Sprintf("Jenjang: %s\n", levelName))
	}

	if len(author) > 0 {
		keys := make([]string, 0, len(author))
		for k := range author {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("Data penulis:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", k, author[k]))
		}
	}
	sb.WriteString("Susun kerangka dan draf awal untuk proyek ini.")

	return Prompt{
		System: systemPrompt,
		User:   sb.String(),
	}
}
