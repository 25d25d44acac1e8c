// Package pkg provides the core libraries for udtree treebank processing.
//
// # Overview
//
// udtree works with Universal Dependencies treebanks in CoNLL-U format:
// in-memory dependency trees, sentence-level transformations, annotation
// consistency checks, and report handling. The pkg directory is organized
// into three main areas:
//
//  1. [core] - Domain logic (dependency trees, morphological features)
//  2. [conllu] / [checks] - Format handling and validation rules
//  3. [cache] / [store] - Infrastructure (report caching and persistence)
//
// # Architecture
//
// The typical data flow through udtree:
//
//	CoNLL-U file
//	         ↓
//	    [conllu] package (parse into sentence trees)
//	         ↓
//	    [core/tree] package (tree structure + transformations)
//	         ↓
//	    [checks] package (annotation consistency rules)
//	         ↓
//	    report / annotated CoNLL-U output
//
// # Quick Start
//
// Parse a treebank and run the default checks:
//
//	import (
//	    "github.com/matzehuels/udtree/pkg/checks"
//	    "github.com/matzehuels/udtree/pkg/conllu"
//	)
//
//	// 1. Parse the file
//	roots, _ := conllu.ReadFile("train.conllu")
//
//	// 2. Run consistency checks
//	checker := checks.New(checks.Default())
//	rep := checks.NewReport()
//	for _, root := range roots {
//	    checker.Check(root, rep)
//	}
//
//	// 3. Print the frequency overview
//	fmt.Print(rep.String())
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/tree] - The dependency tree structure. Nodes carry the CoNLL-U
// columns, parent/child links with cycle protection, word-order aware
// traversal, subtree shifts, and lazily parsed enhanced dependencies.
//
// [core/feats] - Morphological feature sets with CoNLL-U serialization
// (case-insensitive alphabetical ordering, "_" for empty sets).
//
// ## Format and Validation
//
// [conllu] - CoNLL-U reading and writing, including multiword token ranges
// and sentence metadata comments.
//
// [checks] - Annotation consistency rules with TOML-configurable rule sets.
// Findings are counted per rule code and annotated on the offending nodes.
//
// ## Infrastructure
//
// [cache] - Report caching keyed by content and ruleset hashes. FileCache
// for CLI, RedisCache for shared deployments, NullCache for testing.
//
// [store] - Durable report persistence. FileStore for CLI (JSON files),
// MongoStore for shared deployments.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Instrumentation hooks with no-op defaults.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/core/tree/...    # Specific package
//	go test -run Example           # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/core
// [core/tree]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/core/tree
// [core/feats]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/core/feats
// [conllu]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/conllu
// [checks]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/checks
// [cache]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/udtree/pkg/buildinfo
package pkg
