package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/CodMac/go-code-explorer/collector"
	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/extractor"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/parser"
	"golang.org/x/sync/errgroup"
)

var ErrNoFiles = errors.New("no source files to analyze")

// FileProcessor runs the two analysis phases over a set of files with a pool
// of workers, each owning its own parser.
type FileProcessor struct {
	Language model.Language
	Workers  int
	Logger   *log.Logger // warnings about skipped files
}

// Result is the outcome of ProcessFiles.
type Result struct {
	Context   *core.GlobalContext
	Relations []*model.DependencyRelation
	Skipped   []string // files that could not be parsed or collected
}

func NewFileProcessor(lang model.Language, workers int) *FileProcessor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
		Logger:   log.New(os.Stderr, "[code-explorer] ", 0),
	}
}

// ProcessFiles collects the definitions of all files (phase 1), then extracts
// relations with the complete GlobalContext (phase 2).
func (fp *FileProcessor) ProcessFiles(ctx context.Context, filePaths []string) (*Result, error) {
	if len(filePaths) == 0 {
		return nil, ErrNoFiles
	}

	resolver, err := core.GetSymbolResolver(fp.Language)
	if err != nil {
		return nil, err
	}
	col, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, err
	}
	ext, err := extractor.GetExtractor(fp.Language)
	if err != nil {
		return nil, err
	}

	gc := core.NewGlobalContext(resolver)
	result := &Result{Context: gc}
	var mu sync.Mutex

	skip := func(path string, err error) {
		fp.Logger.Printf("skipping %s: %v", path, err)
		mu.Lock()
		result.Skipped = append(result.Skipped, path)
		mu.Unlock()
	}

	err = fp.runPhase(ctx, filePaths, func(p parser.Parser, path string) error {
		tree, source, err := p.ParseFile(path)
		if err != nil {
			skip(path, err)
			return nil
		}
		defer tree.Close()

		fCtx, err := col.CollectDefinitions(tree.RootNode(), path, source)
		if err != nil {
			skip(path, err)
			return nil
		}
		gc.RegisterFileContext(fCtx)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("phase 1 (definition collection) failed: %w", err)
	}

	err = fp.runPhase(ctx, filePaths, func(p parser.Parser, path string) error {
		gc.RLock()
		_, collected := gc.FileContexts[path]
		gc.RUnlock()
		if !collected {
			return nil
		}

		tree, source, err := p.ParseFile(path)
		if err != nil {
			return fmt.Errorf("reparse %s: %w", path, err)
		}
		defer tree.Close()

		relations, err := ext.Extract(tree.RootNode(), path, source, gc)
		if err != nil {
			fp.Logger.Printf("failed to extract relations in %s: %v", path, err)
			return nil
		}
		mu.Lock()
		result.Relations = append(result.Relations, relations...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("phase 2 (relation extraction) failed: %w", err)
	}

	sortRelations(result.Relations)
	sort.Strings(result.Skipped)
	return result, nil
}

type workerFunc func(p parser.Parser, path string) error

func (fp *FileProcessor) runPhase(ctx context.Context, filePaths []string, fn workerFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	filesChan := make(chan string)

	g.Go(func() error {
		defer close(filesChan)
		for _, path := range filePaths {
			select {
			case filesChan <- path:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < fp.Workers; i++ {
		g.Go(func() error {
			p, err := parser.NewParser(fp.Language)
			if err != nil {
				return err
			}
			defer p.Close()

			for path := range filesChan {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(p, path); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func sortRelations(relations []*model.DependencyRelation) {
	sort.SliceStable(relations, func(i, j int) bool {
		a, b := relations[i], relations[j]
		if a.Source.QualifiedName != b.Source.QualifiedName {
			return a.Source.QualifiedName < b.Source.QualifiedName
		}
		if a.Location != nil && b.Location != nil && a.Location.StartLine != b.Location.StartLine {
			return a.Location.StartLine < b.Location.StartLine
		}
		return a.Target.QualifiedName < b.Target.QualifiedName
	})
}
