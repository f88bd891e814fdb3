package discord

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/igecorp/igego/pkg/database"
	"github.com/igecorp/igego/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// ErrNotLoaded is returned by Reload before Params has run.
var ErrNotLoaded = errors.New("handlers have not been loaded")

// LoadOptions points the loader at the handler directories. SlashsDir and
// EventsDir are required; an empty CommandsDir or MongoURI skips that stage.
type LoadOptions struct {
	CommandsDir string
	SlashsDir   string
	EventsDir   string
	MongoURI    string
	DBName      string
	// Compiled selects prebuilt .so plugins instead of .go sources.
	Compiled bool
	// CmdsInFolders reads commands and slashes from one level of
	// subdirectories (commands/<category>/<file>) instead of a flat dir.
	CmdsInFolders bool
}

// Params loads every handler stage and the optional database. Stages run
// concurrently; files inside a stage load in directory order. Per-file
// failures are logged and collected in the summary without aborting the
// stage. The returned error covers missing directories, a failed database
// connection and context cancellation.
func (c *Client) Params(ctx context.Context, opts LoadOptions) (*LoadSummary, error) {
	if opts.SlashsDir == "" {
		return nil, ErrMissingSlashDir
	}
	if opts.EventsDir == "" {
		return nil, ErrMissingEventDir
	}

	c.mu.Lock()
	if c.importer == nil || c.lastLoad == nil || c.lastLoad.Compiled != opts.Compiled {
		c.importer = NewImporter(opts.Compiled)
	}
	stored := opts
	c.lastLoad = &stored
	c.mu.Unlock()

	l := c.loader()
	start := time.Now()
	summary := &LoadSummary{}

	var g errgroup.Group

	if opts.CommandsDir == "" {
		logger.Warn("No commands directory configured, skipping text commands", "Loader")
		summary.Commands = &LoadReport{Kind: KindCommands, Skipped: true}
	} else {
		g.Go(func() error {
			summary.Commands = l.commands(ctx, opts.CommandsDir)
			return nil
		})
	}
	g.Go(func() error {
		summary.Slashs = l.slashs(ctx, opts.SlashsDir)
		return nil
	})
	g.Go(func() error {
		summary.Events = l.events(ctx, opts.EventsDir)
		return nil
	})

	if opts.MongoURI == "" {
		logger.Warn("No MongoDB URI configured, skipping database", "Loader")
	} else if c.DB() != nil {
		summary.Database = true
	} else {
		g.Go(func() error {
			db, err := database.Connect(ctx, opts.MongoURI, opts.DBName)
			if err != nil {
				return err
			}
			c.setDB(db)
			summary.Database = true
			return nil
		})
	}

	err := g.Wait()
	summary.Took = time.Since(start)
	if err == nil {
		err = ctx.Err()
	}
	return summary, err
}

// Reload forgets every imported module and runs Params again with the last
// options. Registries are cleared first so deleted files disappear.
func (c *Client) Reload(ctx context.Context) (*LoadSummary, error) {
	c.mu.RLock()
	last, imp := c.lastLoad, c.importer
	c.mu.RUnlock()
	if last == nil {
		return nil, ErrNotLoaded
	}

	logger.System("Reloading handlers...", "Loader")
	imp.InvalidateAll()
	c.Commands.Clear()
	c.Slashs.Clear()
	c.Events.removePrefix(fileKeyPrefix)

	return c.Params(ctx, *last)
}

// LoadCommands loads the text commands in dir with the current importer.
func (c *Client) LoadCommands(ctx context.Context, dir string) *LoadReport {
	return c.loader().commands(ctx, dir)
}

// LoadSlashs loads the slash commands in dir with the current importer.
func (c *Client) LoadSlashs(ctx context.Context, dir string) *LoadReport {
	return c.loader().slashs(ctx, dir)
}

// LoadEvents binds the event handlers in dir with the current importer.
func (c *Client) LoadEvents(ctx context.Context, dir string) *LoadReport {
	return c.loader().events(ctx, dir)
}

// Importer returns the importer used by the loader.
func (c *Client) Importer() Importer {
	return c.loader().importer
}

type loader struct {
	client   *Client
	importer Importer
	folders  bool
}

func (c *Client) loader() *loader {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.importer == nil {
		c.importer = NewImporter(false)
	}
	l := &loader{client: c, importer: c.importer}
	if c.lastLoad != nil {
		l.folders = c.lastLoad.CmdsInFolders
	}
	return l
}

// files lists the eligible files of dir in directory order. In folder mode
// the files of each immediate subdirectory are listed instead.
func (l *loader) files(dir string, folders bool) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	dirs := []string{root}
	if folders {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		dirs = dirs[:0]
		for _, e := range entries {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}

	ext := l.importer.Extension()
	var paths []string
	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
				continue
			}
			paths = append(paths, filepath.Join(d, e.Name()))
		}
	}
	return paths, nil
}

// displayName is the file name up to its first dot: "ready.old.go" binds
// the ready event.
func (l *loader) displayName(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i > 0 {
		return name[:i]
	}
	return strings.TrimSuffix(name, l.importer.Extension())
}

// run drives one stage: enumerate, load each file, log the outcome.
func (l *loader) run(ctx context.Context, kind, dir string, folders bool, load func(path string) error) *LoadReport {
	report := newReport(kind, dir)

	paths, err := l.files(dir, folders)
	if err != nil {
		logger.Error(fmt.Sprintf("Cannot read %s directory %s: %v", kind, dir, err), "Loader")
		report.fail(dir, dir, err)
		return report
	}
	report.Total = len(paths)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report.fail(l.displayName(path), path, err)
			continue
		}
		if err := load(path); err != nil {
			name := l.displayName(path)
			logger.Error(fmt.Sprintf("Error loading %s %s: %v", kind, name, err), "Loader")
			report.fail(name, path, err)
			continue
		}
		report.Loaded++
	}

	logger.Info(report.String(), "Loader")
	return report
}

func (l *loader) commands(ctx context.Context, dir string) *LoadReport {
	return l.run(ctx, KindCommands, dir, l.folders, func(path string) error {
		m, err := l.importer.Import(path)
		if err != nil {
			return err
		}
		sym, err := m.Lookup(CommandSymbol)
		if err != nil {
			return err
		}
		opts, err := commandOptionsOf(sym)
		if err != nil {
			return err
		}
		cmd, err := NewCommand(opts)
		if err != nil {
			return err
		}
		l.client.Commands.Set(cmd.Name, cmd)
		return nil
	})
}

func (l *loader) slashs(ctx context.Context, dir string) *LoadReport {
	return l.run(ctx, KindSlashs, dir, l.folders, func(path string) error {
		m, err := l.importer.Import(path)
		if err != nil {
			return err
		}
		sym, err := m.Lookup(SlashSymbol)
		if err != nil {
			return err
		}
		opts, err := slashOptionsOf(sym)
		if err != nil {
			return err
		}
		slash, err := NewSlash(opts)
		if err != nil {
			return err
		}
		l.client.Slashs.Set(slash.Name, slash)
		return nil
	})
}

// fileKeyPrefix marks listeners bound by the loader.
const fileKeyPrefix = "file:"

// events binds each file's Handler to the event named by the file. The import
// is dropped right after binding so the next load reads the file again.
func (l *loader) events(ctx context.Context, dir string) *LoadReport {
	return l.run(ctx, KindEvents, dir, false, func(path string) error {
		defer l.importer.Invalidate(path)

		m, err := l.importer.Import(path)
		if err != nil {
			return err
		}
		sym, err := m.Lookup(HandlerSymbol)
		if err != nil {
			return err
		}
		fn, err := listenerOf(sym)
		if err != nil {
			return err
		}
		l.client.Events.Bind(fileKeyPrefix+path, l.displayName(path), fn)
		return nil
	})
}

func commandOptionsOf(sym interface{}) (CommandOptions, error) {
	switch v := sym.(type) {
	case CommandOptions:
		return v, nil
	case *CommandOptions:
		if v != nil {
			return *v, nil
		}
	}
	return CommandOptions{}, fmt.Errorf("symbol %s is %T, want discord.CommandOptions", CommandSymbol, sym)
}

func slashOptionsOf(sym interface{}) (SlashOptions, error) {
	switch v := sym.(type) {
	case SlashOptions:
		return v, nil
	case *SlashOptions:
		if v != nil {
			return *v, nil
		}
	}
	return SlashOptions{}, fmt.Errorf("symbol %s is %T, want discord.SlashOptions", SlashSymbol, sym)
}

func listenerOf(sym interface{}) (EventListener, error) {
	switch v := sym.(type) {
	case func(*Client, interface{}):
		if v != nil {
			return v, nil
		}
	case EventListener:
		if v != nil {
			return v, nil
		}
	case *EventListener:
		if v != nil && *v != nil {
			return *v, nil
		}
	}
	return nil, fmt.Errorf("symbol %s is %T, want func(*discord.Client, interface{})", HandlerSymbol, sym)
}
