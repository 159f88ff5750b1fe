package project_test

import (
	"testing"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestBackfill_FillsMissingOptionalFields(t *testing.T) {
	doc := &project.Document{
		Title:      "Judul",
		AuthorInfo: project.Record{"name": "A"},
		Chapters:   []any{},
	}

	project.Backfill(doc)

	require.NotNil(t, doc.Bibliography)
	require.Empty(t, doc.Bibliography)
	require.NotNil(t, doc.Appendices)
	require.Empty(t, doc.Appendices)
	require.Nil(t, doc.StatementPageData)
	require.Nil(t, doc.ApprovalData)
	require.Equal(t, project.DefaultPreface, doc.Preface)
	require.Equal(t, project.DefaultAbstract, doc.Abstract)
}

func TestBackfill_Idempotent(t *testing.T) {
	inputs := []string{
		`{"title":"A","authorInfo":{},"outline":[],"chapters":[]}`,
		`{"title":"A","authorInfo":{},"outline":[],"chapters":[],"bibliography":[{"k":"v"}]}`,
		`{"title":"A","authorInfo":{},"outline":[],"chapters":[],"preface":"<p>x</p>","approvalData":{"by":"B"}}`,
		`{"title":"A","authorInfo":{},"outline":[],"chapters":[],"bibliography":[],"appendices":[],"statementPageData":null,"approvalData":null,"preface":"p","abstract":"a"}`,
	}

	for _, raw := range inputs {
		once, err := project.Decode(raw)
		require.NoError(t, err)

		encoded, err := project.Encode(once)
		require.NoError(t, err)
		twice, err := project.Decode(encoded)
		require.NoError(t, err)

		require.Equal(t, once, project.Backfill(twice), raw)
	}
}

func TestBackfill_KeepsPresentValues(t *testing.T) {
	doc, err := project.Decode(`{"title":"A","authorInfo":{},"bibliography":[{"k":"v"}],"preface":"<p>mine</p>","statementPageData":{"city":"Bogor"}}`)
	require.NoError(t, err)
	require.Len(t, doc.Bibliography, 1)
	require.Equal(t, "<p>mine</p>", doc.Preface)
	require.Equal(t, "Bogor", doc.StatementPageData.(project.Record)["city"])
}

func TestDecode_RequiredFields(t *testing.T) {
	_, err := project.Decode(`{"title":"A","authorInfo":{},"outline":[]}`, "title", "outline", "chapters", "authorInfo")
	require.ErrorIs(t, err, project.ErrInvalidStructure)
	require.Contains(t, err.Error(), "chapters")

	_, err = project.Decode(`{"title":"A","authorInfo":null}`, "title", "authorInfo")
	require.ErrorIs(t, err, project.ErrInvalidStructure)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := project.Decode(`{"title":`)
	require.ErrorIs(t, err, project.ErrParse)

	_, err = project.Decode(`["not","an","object"]`)
	require.ErrorIs(t, err, project.ErrParse)

	_, err = project.Decode(`{"title":42,"authorInfo":{}}`, "title")
	require.ErrorIs(t, err, project.ErrParse)
}

func TestExportFileName(t *testing.T) {
	cases := map[string]string{
		"Analisis Data!!":             "proyek-akademik-analisis-data.json",
		"???":                         "proyek-akademik-tanpa-judul.json",
		"":                            "proyek-akademik-tanpa-judul.json",
		"  Sistem Informasi -- 2024 ": "proyek-akademik-sistem-informasi-2024.json",
		"Élan Vital":                  "proyek-akademik-lan-vital.json",
	}
	for title, want := range cases {
		require.Equal(t, want, project.ExportFileName(title), title)
	}

	require.Equal(t, "analisis-data", project.Slug("Analisis Data!!"))
	require.Equal(t, "", project.Slug("???"))
}
