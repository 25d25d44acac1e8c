package conllu

import (
	"strings"
	"testing"

	"github.com/matzehuels/udtree/pkg/errors"
)

const sample = `# sent_id = s1
# text = John loves Mary.
1	John	John	PROPN	NNP	Number=Sing	2	nsubj	2:nsubj	_
2	loves	love	VERB	VBZ	Number=Sing|Person=3	0	root	0:root	_
3	Mary	Mary	PROPN	NNP	Number=Sing	2	obj	2:obj	SpaceAfter=No
4	.	.	PUNCT	.	_	2	punct	_	_
`

func TestReadSingleSentence(t *testing.T) {
	roots, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d sentences, want 1", len(roots))
	}
	r := roots[0]

	if r.SentID != "s1" {
		t.Errorf("SentID = %q, want s1", r.SentID)
	}
	if r.Text != "John loves Mary." {
		t.Errorf("Text = %q", r.Text)
	}
	if r.NodeCount() != 4 {
		t.Fatalf("NodeCount = %d, want 4", r.NodeCount())
	}

	loves, _ := r.At(2)
	if loves.Parent() != r.Node() {
		t.Error("root word not attached to technical root")
	}
	john, _ := r.At(1)
	if john.Parent() != loves || john.Deprel != "nsubj" {
		t.Errorf("John attached to %v as %q, want loves/nsubj", john.Parent(), john.Deprel)
	}
	if got := john.Feats().Get("Number"); got != "Sing" {
		t.Errorf("Number feat = %q, want Sing", got)
	}

	deps, err := john.Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	if len(deps) != 1 || deps[0].Parent != loves || deps[0].Deprel != "nsubj" {
		t.Errorf("enhanced deps = %v, want [loves/nsubj]", deps)
	}

	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	roots, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Marshal(roots)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(out); got != sample {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, sample)
	}
}

func TestReadMultipleSentences(t *testing.T) {
	input := strings.Join([]string{
		"1\ta\t_\t_\t_\t_\t0\troot\t_\t_",
		"",
		"1\tb\t_\t_\t_\t_\t0\troot\t_\t_",
		"",
	}, "\n")

	roots, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d sentences, want 2", len(roots))
	}
	// Sentences without sent_id receive a generated one.
	if roots[0].SentID == "" || roots[0].SentID == roots[1].SentID {
		t.Errorf("generated sent_ids not unique: %q vs %q", roots[0].SentID, roots[1].SentID)
	}
}

func TestReadMWT(t *testing.T) {
	input := strings.Join([]string{
		"# sent_id = s1",
		"1-2\tdámelo\t_\t_\t_\t_\t_\t_\t_\t_",
		"1\tda\t_\t_\t_\t_\t0\troot\t_\t_",
		"2\tme\t_\t_\t_\t_\t1\tobj\t_\t_",
		"3\tya\t_\t_\t_\t_\t1\tadvmod\t_\t_",
		"",
	}, "\n")

	roots, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := roots[0]
	if len(r.MWTs()) != 1 {
		t.Fatalf("got %d MWTs, want 1", len(r.MWTs()))
	}
	da, _ := r.At(1)
	if m := da.MultiwordToken(); m == nil || m.Form != "dámelo" {
		t.Errorf("MultiwordToken = %v, want dámelo", m)
	}
	ya, _ := r.At(3)
	if ya.MultiwordToken() != nil {
		t.Error("node outside the range linked to an MWT")
	}

	// The range line must be reproduced on output.
	out, err := Marshal(roots)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "1-2\tdámelo") {
		t.Errorf("output missing MWT line:\n%s", out)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{
			name: "TooFewColumns",
			in:   "1\ta\t_\t_\t_\t_\t0\troot\t_",
			code: errors.ErrCodeInvalidConllu,
		},
		{
			name: "BadID",
			in:   "x\ta\t_\t_\t_\t_\t0\troot\t_\t_",
			code: errors.ErrCodeInvalidConllu,
		},
		{
			name: "OutOfSequenceID",
			in:   "2\ta\t_\t_\t_\t_\t0\troot\t_\t_",
			code: errors.ErrCodeInvalidConllu,
		},
		{
			name: "BadHead",
			in:   "1\ta\t_\t_\t_\t_\tzz\troot\t_\t_",
			code: errors.ErrCodeInvalidConllu,
		},
		{
			name: "MissingHead",
			in:   "1\ta\t_\t_\t_\t_\t9\troot\t_\t_",
			code: errors.ErrCodeInvalidConllu,
		},
		{
			name: "EmptyNode",
			in:   "1.1\ta\t_\t_\t_\t_\t_\t_\t_\t_",
			code: errors.ErrCodeUnsupported,
		},
		{
			name: "BadRange",
			in:   "3-1\ta\t_\t_\t_\t_\t_\t_\t_\t_",
			code: errors.ErrCodeInvalidConllu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in + "\n"))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile("no/such/file.conllu")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile = %v, want FILE_NOT_FOUND", err)
	}
}

func TestCommentsPreserved(t *testing.T) {
	input := strings.Join([]string{
		"# sent_id = s1",
		"# newdoc id = d1",
		"1\ta\t_\t_\t_\t_\t0\troot\t_\t_",
		"",
	}, "\n")

	roots, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(roots[0].Comments) != 1 || roots[0].Comments[0] != "newdoc id = d1" {
		t.Errorf("Comments = %v, want [newdoc id = d1]", roots[0].Comments)
	}
	out, _ := Marshal(roots)
	if !strings.Contains(string(out), "# newdoc id = d1\n") {
		t.Errorf("comment not reproduced:\n%s", out)
	}
}
