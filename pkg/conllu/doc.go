// Package conllu reads and writes dependency trees in the CoNLL-U format.
//
// Each sentence block consists of comment lines ("# sent_id = ...",
// "# text = ..."), optional multi-word token range lines ("4-5"), and one
// 10-column line per syntactic word. Underscore is the empty sentinel for
// unset columns. The enhanced-dependency column is carried verbatim into the
// tree's raw form and resolved lazily there.
//
// Sentences without an explicit sent_id keep the UUID assigned by
// tree.NewRoot, so node addresses stay document-unique.
//
// Empty nodes (decimal ids such as "4.1") are not supported and are
// rejected with an error.
package conllu
