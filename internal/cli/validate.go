package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/udtree/pkg/cache"
	"github.com/matzehuels/udtree/pkg/checks"
	"github.com/matzehuels/udtree/pkg/conllu"
	"github.com/matzehuels/udtree/pkg/observability"
	"github.com/matzehuels/udtree/pkg/store"
)

// validateOpts holds the command-line flags for the validate command.
// These options control the ruleset, caching, report persistence, and
// annotated output.
type validateOpts struct {
	rules      string        // path to a TOML ruleset (defaults if empty)
	cacheDir   string        // report cache directory
	cacheScope string        // namespace prefix for cache keys
	noCache    bool          // disable the report cache
	redis      string        // redis address for a shared cache
	storeDir   string        // directory for persisted reports
	mongo      string        // mongodb URI for persisted reports
	ttl        time.Duration // cache entry time-to-live
	output     string        // write annotated CoNLL-U here (disables the cache)
}

// newValidateCmd creates the validate command.
// It runs annotation consistency checks over one or more CoNLL-U files and
// prints a frequency overview of the findings.
//
// Reports are cached keyed by the content hash of the file and the ruleset,
// so re-validating an unchanged file is a cache lookup. Requesting annotated
// output (-o) bypasses the cache because findings must be attached to nodes.
func newValidateCmd() *cobra.Command {
	opts := validateOpts{ttl: 24 * time.Hour}

	cmd := &cobra.Command{
		Use:   "validate <file.conllu> [file...]",
		Short: "Run annotation checks over CoNLL-U files",
		Long: `Validate one or more CoNLL-U files against annotation consistency rules.

Each finding increments a per-rule counter; the command prints an overview
sorted by frequency followed by a TOTAL line.

Examples:
  udtree validate train.conllu
  udtree validate --rules rules.toml train.conllu dev.conllu
  udtree validate -o flagged.conllu train.conllu   # write Bug= marks to MISC`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runValidate(c.Context(), &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.rules, "rules", "", "TOML ruleset file (built-in defaults if empty)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "report cache directory (default ~/.cache/udtree)")
	cmd.Flags().StringVar(&opts.cacheScope, "cache-scope", "", "namespace prefix for cache keys (isolates corpora sharing one backend)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for a shared report cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.storeDir, "store", "", "persist reports as JSON under this directory")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "persist reports to this MongoDB URI")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "cache entry time-to-live")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write annotated CoNLL-U to this file")

	return cmd
}

// openCache selects the cache backend from flags.
// Priority: --no-cache (or -o) disables caching, --redis selects the shared
// backend, otherwise a local file cache is used.
func (o *validateOpts) openCache(ctx context.Context) (cache.Cache, error) {
	if o.noCache || o.output != "" {
		return cache.NewNullCache(), nil
	}
	if o.redis != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: o.redis})
	}
	dir := o.cacheDir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}

// openStore selects the report store from flags, or returns nil when
// persistence was not requested.
func (o *validateOpts) openStore(ctx context.Context) (store.Store, error) {
	if o.mongo != "" {
		return store.NewMongoStore(ctx, store.MongoConfig{URI: o.mongo})
	}
	if o.storeDir != "" {
		return store.NewFileStore(o.storeDir)
	}
	return nil, nil
}

// storeDocID derives a stable document id from a CLI file path. Relative
// segments are resolved so ".." never appears in the id and the same file
// maps to the same record regardless of the invocation directory.
func storeDocID(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return filepath.ToSlash(abs), nil
}

// rulesetBytes returns the bytes that identify the active ruleset for cache
// keying. A custom ruleset is identified by its file content, the built-in
// defaults by a fixed tag.
func (o *validateOpts) rulesetBytes() ([]byte, error) {
	if o.rules == "" {
		return []byte("builtin-rules"), nil
	}
	return os.ReadFile(o.rules)
}

func runValidate(ctx context.Context, opts *validateOpts, files []string) error {
	logger := loggerFromContext(ctx)

	cfg := checks.Default()
	if opts.rules != "" {
		var err error
		cfg, err = checks.LoadConfig(opts.rules)
		if err != nil {
			return fmt.Errorf("load ruleset: %w", err)
		}
	}
	rulesData, err := opts.rulesetBytes()
	if err != nil {
		return fmt.Errorf("read ruleset: %w", err)
	}
	rulesetHash := cache.Hash(rulesData)

	c, err := opts.openCache(ctx)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer c.Close()

	st, err := opts.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if st != nil {
		defer st.Close(ctx)
	}

	checker := checks.New(cfg)
	total := checks.NewReport()
	var annotated []byte

	for _, file := range files {
		rep, out, contentHash, err := validateFile(ctx, checker, c, file, rulesetHash, opts)
		if err != nil {
			return err
		}
		total.Merge(rep)
		annotated = append(annotated, out...)

		if st != nil {
			docID, err := storeDocID(file)
			if err != nil {
				return err
			}
			rec := &store.Record{
				DocID:       docID,
				ContentHash: contentHash,
				CreatedAt:   time.Now().UTC(),
				Report:      rep,
			}
			if err := st.Put(ctx, rec); err != nil {
				return fmt.Errorf("store report for %s: %w", file, err)
			}
		}
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, annotated, 0o644); err != nil {
			return fmt.Errorf("write annotated output: %w", err)
		}
		logger.Infof("Wrote annotated CoNLL-U to %s", opts.output)
	}

	fmt.Print(total.String())
	return nil
}

// validateFile checks one file and returns its report together with the
// file's content hash. When annotated output was requested, the second return
// value holds the re-serialized CoNLL-U with Bug= marks in the MISC column.
func validateFile(ctx context.Context, checker *checks.Checker, c cache.Cache, file, rulesetHash string, opts *validateOpts) (*checks.Report, []byte, string, error) {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, "", fmt.Errorf("read %s: %w", file, err)
	}
	contentHash := cache.Hash(data)
	key := cache.Scoped(opts.cacheScope, cache.ReportKey(contentHash, rulesetHash))

	if cached, ok, err := c.Get(ctx, key); err != nil {
		logger.Warnf("Cache lookup failed: %v", err)
	} else if ok {
		observability.Cache().OnCacheHit(ctx, "report")
		var rep checks.Report
		if err := json.Unmarshal(cached, &rep); err == nil {
			logger.Debugf("Report for %s served from cache", file)
			return &rep, nil, contentHash, nil
		}
		logger.Warnf("Discarding corrupt cache entry for %s", file)
	} else {
		observability.Cache().OnCacheMiss(ctx, "report")
	}

	prog := newProgress(logger)
	start := time.Now()
	observability.Parse().OnParseStart(ctx, file)
	roots, err := conllu.Parse(data)
	observability.Parse().OnParseComplete(ctx, file, len(roots), time.Since(start), err)
	if err != nil {
		return nil, nil, "", fmt.Errorf("parse %s: %w", file, err)
	}

	rep := checks.NewReport()
	start = time.Now()
	observability.Check().OnCheckStart(ctx, file, len(roots))
	for _, root := range roots {
		checker.Check(root, rep)
	}
	observability.Check().OnCheckComplete(ctx, file, rep.Total(), time.Since(start), nil)
	for _, f := range rep.Findings {
		observability.Check().OnFinding(ctx, f.Code, f.Address)
	}
	prog.done(fmt.Sprintf("Checked %d sentences in %s", len(roots), file))

	var annotated []byte
	if opts.output != "" {
		start = time.Now()
		annotated, err = conllu.Marshal(roots)
		observability.Parse().OnWriteComplete(ctx, file, len(roots), time.Since(start), err)
		if err != nil {
			return nil, nil, "", fmt.Errorf("serialize %s: %w", file, err)
		}
	}

	if encoded, err := json.Marshal(rep); err == nil {
		if err := c.Set(ctx, key, encoded, opts.ttl); err != nil {
			logger.Warnf("Cache write failed: %v", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "report", len(encoded))
		}
	}

	return rep, annotated, contentHash, nil
}
