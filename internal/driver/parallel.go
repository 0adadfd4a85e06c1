package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"axlint/internal/diag"
	"axlint/internal/observ"
	"axlint/internal/source"
)

// Check анализирует все *.py файлы из paths параллельно. Каждый путь —
// файл или каталог (каталоги обходятся рекурсивно). Результаты идут в
// порядке отсортированного списка файлов независимо от степени
// параллелизма.
func Check(ctx context.Context, paths []string, opts Options) (*CheckResult, error) {
	timer := observ.NewTimer()

	discoverDone := timer.Track("discover")
	files, err := listPyFiles(paths)
	if err != nil {
		return nil, err
	}
	discoverDone(fmt.Sprintf("%d files", len(files)))

	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = "."
	}
	fileSet := source.NewFileSetWithBase(baseDir)

	res := &CheckResult{FileSet: fileSet}
	if len(files) == 0 {
		res.Timings = timer.Report()
		return res, nil
	}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 1000
	}

	// Предзагружаем все файлы последовательно: FileSet не потокобезопасен
	// на запись, а чтение после загрузки — да.
	loadDone := timer.Track("load")
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	loadDone("")

	lintDone := timer.Track("lint")
	mapping := opts.Config.Mapping()
	reg := buildRegistry(opts.Config)
	var cfgDigest [32]byte
	if opts.Config != nil {
		cfgDigest = opts.Config.Digest()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if opts.Observer != nil {
				opts.Observer.FileStarted(path)
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{}, // пустой span для ошибок I/O
				})
				results[i] = FileResult{Path: path, Bag: bag}
				if opts.Observer != nil {
					opts.Observer.FileFinished(path, bag.Len(), false)
				}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			key := cacheKey(file.Hash, cfgDigest)
			if bag, ok := cacheLookup(opts.Cache, key, fileID, maxDiagnostics); ok {
				results[i] = FileResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
				if opts.Observer != nil {
					opts.Observer.FileFinished(path, bag.Len(), true)
				}
				return nil
			}

			bag := lintFile(file, mapping, reg, maxDiagnostics)
			cacheStore(opts.Cache, key, path, bag)

			results[i] = FileResult{Path: path, FileID: fileID, Bag: bag}
			if opts.Observer != nil {
				opts.Observer.FileFinished(path, bag.Len(), false)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	cached := 0
	for i := range results {
		if results[i].FromCache {
			cached++
		}
	}
	lintDone(fmt.Sprintf("%d from cache", cached))

	res.Files = results
	res.Timings = timer.Report()
	return res, nil
}
