package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/udtree/pkg/checks"
)

const sampleConllu = `# sent_id = s1
# text = John loves Mary
1	John	John	PROPN	_	_	2	nsubj	_	_
2	loves	love	VERB	_	_	0	root	_	_
3	Mary	Mary	PROPN	_	_	2	obj	_	_
`

func TestHandleValidate(t *testing.T) {
	handler := handleValidate(checks.New(checks.Default()), 8<<20)

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(sampleConllu))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp validateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Sentences != 1 {
		t.Errorf("Sentences = %d, want 1", resp.Sentences)
	}
	// "loves" is a VERB without a VerbForm feature.
	if resp.Counts["no-VerbForm"] != 1 {
		t.Errorf("Counts[no-VerbForm] = %d, want 1", resp.Counts["no-VerbForm"])
	}
	if resp.Total != len(resp.Findings) {
		t.Errorf("Total = %d, want %d findings", resp.Total, len(resp.Findings))
	}
}

func TestHandleValidateBadInput(t *testing.T) {
	handler := handleValidate(checks.New(checks.Default()), 8<<20)

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader("1\tonly\n"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message in the response")
	}
}

func TestHandleText(t *testing.T) {
	handler := handleText(8 << 20)

	input := `# sent_id = s1
1	Hello	hello	INTJ	_	_	0	root	_	SpaceAfter=No
2	,	,	PUNCT	_	_	1	punct	_	_
3	world	world	NOUN	_	_	1	vocative	_	SpaceAfter=No
4	!	!	PUNCT	_	_	1	punct	_	_
`
	req := httptest.NewRequest(http.MethodPost, "/v1/text", strings.NewReader(input))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp []textResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d sentences, want 1", len(resp))
	}
	if resp[0].SentID != "s1" {
		t.Errorf("SentID = %q, want %q", resp[0].SentID, "s1")
	}
	if resp[0].Text != "Hello, world!" {
		t.Errorf("Text = %q, want %q", resp[0].Text, "Hello, world!")
	}
}
