package generator

import "context"

// MockLLM returns a fixed five-chapter skeleton without calling a model.
// Useful for local runs without an API key.
type MockLLM struct{}

func (MockLLM) Complete(_ context.Context, _ Prompt) (string, error) {
	return "```json\n" + mockProject + "\n```", nil
}

const mockProject = `{
  "outline": [
    "BAB I PENDAHULUAN",
    "BAB II TINJAUAN PUSTAKA",
    "BAB III METODOLOGI PENELITIAN",
    "BAB IV HASIL DAN PEMBAHASAN",
    "BAB V PENUTUP"
  ],
  "chapters": [
    {"title": "BAB I PENDAHULUAN", "sections": ["Latar Belakang", "Rumusan Masalah", "Tujuan Penelitian"], "content": "## Latar Belakang\n\nTuliskan latar belakang penelitian di sini."},
    {"title": "BAB II TINJAUAN PUSTAKA", "sections": ["Landasan Teori", "Penelitian Terdahulu"], "content": "## Landasan Teori\n\nUraikan teori yang relevan."},
    {"title": "BAB III METODOLOGI PENELITIAN", "sections": ["Desain Penelitian", "Teknik Pengumpulan Data"], "content": "## Desain Penelitian\n\nJelaskan desain penelitian."},
    {"title": "BAB IV HASIL DAN PEMBAHASAN", "sections": ["Hasil", "Pembahasan"], "content": "## Hasil\n\nSajikan hasil penelitian."},
    {"title": "BAB V PENUTUP", "sections": ["Kesimpulan", "Saran"], "content": "## Kesimpulan\n\nRangkum temuan utama."}
  ],
  "preface": "Puji syukur penulis panjatkan atas selesainya penulisan ini.",
  "abstract": "Penelitian ini membahas **topik** yang dipilih penulis.",
  "bibliography": [
    {"author": "Sugiyono", "year": "2019", "title": "Metode Penelitian Kuantitatif, Kualitatif, dan R&D", "publisher": "Alfabeta"}
  ]
}`
