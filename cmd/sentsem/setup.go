package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/sentsem/config"
	"github.com/revelaction/sentsem/normalize"
	"github.com/revelaction/sentsem/render"
	"github.com/revelaction/sentsem/similarity"
	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/storage/filesystem"
	"github.com/revelaction/sentsem/storage/sqlite/zombiezen"
	"github.com/revelaction/sentsem/storage/wndb"
	"github.com/revelaction/sentsem/tag"
	"github.com/revelaction/sentsem/wordnet"
)

// loadConfig loads the config file and applies the flags that were set.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}

	// the environment is applied by config.Load
	if v := c.String("lexicon"); v != "" {
		cfg.Lexicon = v
	}
	if c.IsSet("tagger") {
		cfg.Tagger = c.String("tagger")
	}
	if c.IsSet("fallback") {
		cfg.Fallback = c.String("fallback")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
	}

	return cfg, cfg.Validate()
}

// newLogger builds a development logger for debug, otherwise a console
// logger at level. Both write to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(config.ErrInvalid, "log level %q", level)
	}

	if lvl == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	zc.Sampling = nil
	return zc.Build()
}

// NewLexiconRepository selects the backend by path: a WordNet dict
// directory, a JSON file or directory, or a SQLite database.
func NewLexiconRepository(p *Pool, path string) (storage.LexiconRepository, error) {
	if path == "" {
		return nil, errors.Newf("no lexicon, use -lexicon or %s", config.EnvLexicon)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(storage.ErrNotFound, "lexicon %s", path)
	}

	if info.IsDir() {
		if wndb.IsDict(path) {
			return wndb.NewReader(path), nil
		}
		return filesystem.NewLexiconStore(path), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return filesystem.NewLexiconStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewLexiconStore(pool), nil
}

// env holds what the commands share once the flags are parsed.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	pool   *Pool
	ui     UI
}

func newEnv(c *cli.Context, ui UI) (*env, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, pool: &Pool{}, ui: ui}, nil
}

func (e *env) Close() error {
	_ = e.logger.Sync()
	return e.pool.Close()
}

// loadNet loads the configured lexicon, showing a bar when progress is set.
func (e *env) loadNet(progress bool) (*wordnet.Net, error) {
	repo, err := NewLexiconRepository(e.pool, e.cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	return e.load(repo, progress)
}

func (e *env) load(repo storage.LexiconReader, progress bool) (*wordnet.Net, error) {
	var cb storage.Progress
	if progress {
		p := uiprogress.New()
		p.Start()
		bar := p.AddBar(3)
		bar.AppendCompleted()
		bar.PrependElapsed()

		stage := ""
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return stage
		})

		cb = func(current, total int, name string) {
			stage = name
			bar.Set(current)
		}
		defer p.Stop()
	}

	net, err := storage.LoadNet(repo, cb)
	if err != nil {
		return nil, err
	}

	e.logger.Info("lexicon loaded",
		zap.String("path", e.cfg.Lexicon),
		zap.Int("synsets", net.Len()),
		zap.Int("lemmas", len(net.Lemmas())),
	)

	return net, nil
}

func (e *env) tagger(net *wordnet.Net) (tag.Tagger, error) {
	if e.cfg.Tagger == config.TaggerLexical {
		return tag.NewLexical(net), nil
	}

	return tag.NewProse(e.logger)
}

// scorer builds the scorer and its collaborators once per command.
func (e *env) scorer(net *wordnet.Net) (*similarity.Scorer, error) {
	fallback, _ := similarity.ParseFallback(e.cfg.Fallback)

	t, err := e.tagger(net)
	if err != nil {
		return nil, err
	}

	return similarity.New(
		normalize.New(normalize.English()),
		tag.NewAdapter(t, net),
		wordnet.NewLesk(net),
		similarity.WithFallback(fallback),
		similarity.WithLogger(e.logger),
	), nil
}

func (e *env) renderer(c *cli.Context) *render.Renderer {
	r := render.NewRenderer()
	r.Out = e.ui.Out
	r.Format = e.cfg.Format
	r.HasColor = !c.Bool("no-color") && isTerminal(e.ui.Out)
	return r
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// sentences returns the two positional sentence arguments.
func sentences(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", errors.Newf("%s expects two sentences, got %d arguments", c.Command.Name, c.NArg())
	}

	return c.Args().Get(0), c.Args().Get(1), nil
}
