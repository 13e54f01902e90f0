package submit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
)

func TestPayload_TrimsAndOmitsEmpty(t *testing.T) {
	cat := catalog.Default()
	set := answers.NewSet()
	set.Put("lifeStage", answers.Selected("The Builder", "🏗️ The Builder: Mid-Career."))
	set.Put("clientName", answers.Text("  Jo Tan  "))
	set.Put("clientEmail", answers.Text("   "))

	p := Payload(cat, set)

	assert.Equal(t, "🏗️ The Builder: Mid-Career.", p["lifeStage"])
	assert.Equal(t, "Jo Tan", p["clientName"])
	_, present := p["clientEmail"]
	assert.False(t, present, "whitespace-only answer should be omitted")
	_, present = p["boat"]
	assert.False(t, present, "unanswered question should be omitted")
}

func TestPayload_ExcludesHiddenGatedAnswer(t *testing.T) {
	cat := catalog.Default()
	set := answers.NewSet()
	set.Put("friendName", answers.Text("Alex"))
	set.Put("howDiscovered", answers.Selected("Instagram", "📸 Instagram"))

	p := Payload(cat, set)
	_, present := p["friendName"]
	assert.False(t, present, "answer behind a failed gate should be excluded")

	// Flipping the gate back exposes it again.
	set.Put("howDiscovered", answers.Selected("Word of Mouth", catalog.WordOfMouthValue))
	p = Payload(cat, set)
	assert.Equal(t, "Alex", p["friendName"])
}

func TestClient_SubmitPostsEntryFields(t *testing.T) {
	var gotForm map[string][]string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
	}))
	defer server.Close()

	cat := catalog.Default()
	set := answers.NewSet()
	set.Put("lifeStage", answers.Selected("The Builder", "🏗️ The Builder"))
	set.Put("clientMobile", answers.Text("91234567"))

	c := NewClient(server.URL, nil)
	err := c.Submit(context.Background(), cat, set)
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, []string{"🏗️ The Builder"}, gotForm["entry.1348151212"])
	assert.Equal(t, []string{"91234567"}, gotForm["entry.1901377551"])
	assert.Len(t, gotForm, 2)
}

func TestClient_SubmitReportsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	set := answers.NewSet()
	set.Put("lifeStage", answers.Text("anything"))

	err := c.Submit(context.Background(), catalog.Default(), set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_SubmitConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := NewClient(server.URL, nil)
	err := c.Submit(context.Background(), catalog.Default(), answers.NewSet())
	require.Error(t, err)
}

func TestClient_EmptyURLIsNop(t *testing.T) {
	c := NewClient("", nil)
	set := answers.NewSet()
	set.Put("lifeStage", answers.Text("anything"))

	assert.NoError(t, c.Submit(context.Background(), catalog.Default(), set))
}
