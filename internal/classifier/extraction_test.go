package classifier_test

import (
	"testing"

	"go-gin-calendar/internal/classifier"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want classifier.Extraction
	}{
		{
			name: "plain json",
			raw:  `{"title":"Birthday Party","date":"2024-06-01"}`,
			want: classifier.Extraction{Title: "Birthday Party", Date: "2024-06-01"},
		},
		{
			name: "surrounding whitespace",
			raw:  "\n  {\"title\": \" Dentist \", \"date\": \"2024-03-15\"}  \n",
			want: classifier.Extraction{Title: "Dentist", Date: "2024-03-15"},
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"title\":\"Concert\",\"date\":\"2024-07-20\"}\n```",
			want: classifier.Extraction{Title: "Concert", Date: "2024-07-20"},
		},
		{
			name: "null date",
			raw:  `{"title":"Concert","date":null}`,
			want: classifier.Extraction{Title: "Concert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.ParseExtraction(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtraction_Rejects(t *testing.T) {
	tests := map[string]string{
		"prose":          "The event is a birthday party on June 1st.",
		"empty":          "",
		"array":          `[{"title":"a","date":"2024-06-01"}]`,
		"extra key":      `{"title":"a","date":"2024-06-01","location":"home"}`,
		"missing date":   `{"title":"a","when":"2024-06-01"}`,
		"number title":   `{"title":42,"date":"2024-06-01"}`,
		"truncated json": `{"title":"a","date":"2024-`,
		"prose + json":   `Sure! {"title":"a","date":"2024-06-01"}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := classifier.ParseExtraction(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrExtractionFailed)
		})
	}
}

func TestIsSupportedMediaType(t *testing.T) {
	assert.True(t, classifier.IsSupportedMediaType("image/png"))
	assert.True(t, classifier.IsSupportedMediaType("image/jpeg"))
	assert.False(t, classifier.IsSupportedMediaType("image/tiff"))
	assert.False(t, classifier.IsSupportedMediaType("application/pdf"))
}
