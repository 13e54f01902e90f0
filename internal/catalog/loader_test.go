package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skadvisory/findna/internal/answers"
)

const validCatalogJSON = `{
  "questions": [
    {
      "id": "q1_channel",
      "phase": 1,
      "type": "single",
      "prompt": "How did you hear about us?",
      "key": "channel",
      "entryId": "111",
      "options": [
        {"label": "Referral", "value": "referral"},
        {"label": "Other", "value": "other"}
      ]
    },
    {
      "id": "q2_friend",
      "phase": 1,
      "type": "text",
      "prompt": "Who referred you?",
      "key": "friend",
      "entryId": "222",
      "showIfKey": "channel",
      "showIfEquals": "referral"
    }
  ]
}`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(validCatalogJSON))
	require.NoError(t, err)
	require.Len(t, cat, 2)

	assert.Equal(t, "channel", cat[0].Key)
	assert.Equal(t, TypeSingle, cat[0].Type)
	assert.Len(t, cat[0].Options, 2)

	// The declarative gate became a working predicate.
	set := answers.NewSet()
	assert.Len(t, cat.Visible(set), 1)
	set.Put("channel", answers.Selected("Referral", "referral"))
	assert.Len(t, cat.Visible(set), 2)
	set.Put("channel", answers.Selected("Other", "other"))
	assert.Len(t, cat.Visible(set), 1)
}

func TestParse_RejectsBadPhase(t *testing.T) {
	_, err := Parse([]byte(`{"questions":[{"id":"x","phase":9,"type":"text","prompt":"p","key":"k"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_RejectsUnknownType(t *testing.T) {
	_, err := Parse([]byte(`{"questions":[{"id":"x","phase":1,"type":"slider","prompt":"p","key":"k"}]}`))
	require.Error(t, err)
}

func TestParse_RejectsDuplicateKeys(t *testing.T) {
	_, err := Parse([]byte(`{"questions":[
		{"id":"a","phase":1,"type":"text","prompt":"p","key":"k"},
		{"id":"b","phase":1,"type":"text","prompt":"p","key":"k"}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate answer key")
}

func TestParse_RejectsSingleWithoutOptions(t *testing.T) {
	_, err := Parse([]byte(`{"questions":[{"id":"a","phase":1,"type":"single","prompt":"p","key":"k"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires options")
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"questions": [`))
	require.Error(t, err)
}
