package conllu

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/udtree/pkg/core/tree"
	"github.com/matzehuels/udtree/pkg/errors"
)

// Marshal serializes sentences to CoNLL-U bytes.
func Marshal(roots []*tree.Root) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, roots); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes sentences to a CoNLL-U file.
// The file is created with 0644 permissions.
func WriteFile(path string, roots []*tree.Root) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(f, roots)
}

// Write writes sentences as CoNLL-U to w, one blank-line-separated block
// per sentence.
func Write(w io.Writer, roots []*tree.Root) error {
	bw := bufio.NewWriter(w)
	for _, root := range roots {
		writeSentence(bw, root)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing output")
	}
	return nil
}

func writeSentence(w *bufio.Writer, root *tree.Root) {
	fmt.Fprintf(w, "# sent_id = %s\n", root.SentID)
	if root.Text != "" {
		fmt.Fprintf(w, "# text = %s\n", root.Text)
	}
	for _, c := range root.Comments {
		fmt.Fprintf(w, "# %s\n", c)
	}

	// MWT range lines precede their first covered word.
	mwtAt := make(map[int]*tree.MWT)
	for _, m := range root.MWTs() {
		first, _ := m.OrdRange()
		mwtAt[first] = m
	}

	for _, n := range root.Nodes() {
		if m, ok := mwtAt[n.Ord()]; ok {
			first, last := m.OrdRange()
			fmt.Fprintf(w, "%d-%d\t%s\t_\t_\t_\t_\t_\t_\t_\t%s\n",
				first, last, sentinel(m.Form), sentinel(m.Misc))
		}
		writeToken(w, n)
	}
	w.WriteByte('\n')
}

func writeToken(w *bufio.Writer, n *tree.Node) {
	head := 0
	if p := n.Parent(); p != nil {
		head = p.Ord()
	}
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		n.Ord(),
		sentinel(n.Form),
		sentinel(n.Lemma),
		sentinel(n.Upos),
		sentinel(n.Xpos),
		n.Feats().String(),
		strconv.Itoa(head),
		sentinel(n.Deprel),
		n.RawDeps(),
		sentinel(n.Misc),
	)
}

func sentinel(s string) string {
	if s == "" {
		return empty
	}
	return s
}
