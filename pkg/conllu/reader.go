package conllu

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/udtree/pkg/core/tree"
	"github.com/matzehuels/udtree/pkg/errors"
)

// numColumns is the fixed CoNLL-U column count:
// ID FORM LEMMA UPOS XPOS FEATS HEAD DEPREL DEPS MISC.
const numColumns = 10

// empty is the CoNLL-U sentinel for an unset column.
const empty = "_"

// ReadFile reads a CoNLL-U file and returns its sentences.
func ReadFile(path string) ([]*tree.Root, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Parse decodes CoNLL-U data from memory.
// Use Read for streaming input or ReadFile for files.
func Parse(data []byte) ([]*tree.Root, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes CoNLL-U sentences from r until EOF.
// Malformed input returns an error with code INVALID_CONLLU (or UNSUPPORTED
// for empty nodes) carrying the offending line number.
func Read(r io.Reader) ([]*tree.Root, error) {
	var roots []*tree.Root

	p := newSentenceParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.TrimSpace(text) == "" {
			root, err := p.finish()
			if err != nil {
				return nil, err
			}
			if root != nil {
				roots = append(roots, root)
			}
			p = newSentenceParser()
			continue
		}

		if err := p.addLine(line, text); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading input")
	}

	root, err := p.finish()
	if err != nil {
		return nil, err
	}
	if root != nil {
		roots = append(roots, root)
	}
	return roots, nil
}

// sentenceParser accumulates one sentence block. Parent links and MWT spans
// are resolved in finish, once all words of the block exist.
type sentenceParser struct {
	root    *tree.Root
	heads   []headRef
	mwts    []mwtSpan
	sawData bool
}

type headRef struct {
	node *tree.Node
	head int
	line int
}

type mwtSpan struct {
	from, to   int
	form, misc string
	line       int
}

func newSentenceParser() *sentenceParser {
	return &sentenceParser{root: tree.NewRoot()}
}

func (p *sentenceParser) addLine(line int, text string) error {
	if strings.HasPrefix(text, "#") {
		p.addComment(text)
		return nil
	}
	return p.addToken(line, text)
}

func (p *sentenceParser) addComment(text string) {
	p.sawData = true
	content := strings.TrimSpace(strings.TrimPrefix(text, "#"))
	if key, value, ok := strings.Cut(content, "="); ok {
		switch strings.TrimSpace(key) {
		case "sent_id":
			p.root.SentID = strings.TrimSpace(value)
			return
		case "text":
			p.root.Text = strings.TrimSpace(value)
			return
		}
	}
	p.root.Comments = append(p.root.Comments, content)
}

func (p *sentenceParser) addToken(line int, text string) error {
	p.sawData = true
	cols := strings.Split(text, "\t")
	if len(cols) != numColumns {
		return errors.New(errors.ErrCodeInvalidConllu, "line %d: want %d columns, got %d", line, numColumns, len(cols))
	}

	id := cols[0]
	if strings.Contains(id, ".") {
		return errors.New(errors.ErrCodeUnsupported, "line %d: empty nodes (id %q) are not supported", line, id)
	}
	if from, to, ok := strings.Cut(id, "-"); ok {
		return p.addRange(line, from, to, cols)
	}

	ord, err := strconv.Atoi(id)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidConllu, "line %d: bad token id %q", line, id)
	}

	head := 0
	if cols[6] != empty {
		head, err = strconv.Atoi(cols[6])
		if err != nil || head < 0 {
			return errors.New(errors.ErrCodeInvalidConllu, "line %d: bad head %q", line, cols[6])
		}
	}

	node := p.root.CreateChild(tree.Attrs{
		Form:   unsentinel(cols[1]),
		Lemma:  unsentinel(cols[2]),
		Upos:   unsentinel(cols[3]),
		Xpos:   unsentinel(cols[4]),
		Feats:  cols[5],
		Deprel: unsentinel(cols[7]),
		Deps:   cols[8],
		Misc:   unsentinel(cols[9]),
	})
	if node.Ord() != ord {
		return errors.New(errors.ErrCodeInvalidConllu, "line %d: token id %d out of sequence (expected %d)", line, ord, node.Ord())
	}
	p.heads = append(p.heads, headRef{node: node, head: head, line: line})
	return nil
}

func (p *sentenceParser) addRange(line int, from, to string, cols []string) error {
	lo, err1 := strconv.Atoi(from)
	hi, err2 := strconv.Atoi(to)
	if err1 != nil || err2 != nil || lo < 1 || hi < lo {
		return errors.New(errors.ErrCodeInvalidConllu, "line %d: bad token range %q", line, cols[0])
	}
	p.mwts = append(p.mwts, mwtSpan{
		from: lo,
		to:   hi,
		form: unsentinel(cols[1]),
		misc: unsentinel(cols[9]),
		line: line,
	})
	return nil
}

// finish resolves parents and MWT spans and returns the sentence, or nil
// when the block was empty.
func (p *sentenceParser) finish() (*tree.Root, error) {
	if !p.sawData {
		return nil, nil
	}

	for _, ref := range p.heads {
		if ref.head == 0 {
			continue // already attached to the technical root
		}
		parent, ok := p.root.At(ref.head)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConllu, "line %d: head %d does not exist", ref.line, ref.head)
		}
		if err := ref.node.SetParent(parent); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConllu, err, "line %d: attaching token %d", ref.line, ref.node.Ord())
		}
	}

	for _, span := range p.mwts {
		if span.to > p.root.NodeCount() {
			return nil, errors.New(errors.ErrCodeInvalidConllu, "line %d: token range %d-%d exceeds sentence length", span.line, span.from, span.to)
		}
		words := make([]*tree.Node, 0, span.to-span.from+1)
		for ord := span.from; ord <= span.to; ord++ {
			w, _ := p.root.At(ord)
			words = append(words, w)
		}
		p.root.AddMWT(words, span.form, span.misc)
	}

	return p.root, nil
}

func unsentinel(s string) string {
	if s == empty {
		return ""
	}
	return s
}
