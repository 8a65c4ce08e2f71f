package flatten

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// readConcurrently reads the candidates' contents on a worker pool and
// returns the files that decoded to text. Binary and unreadable files are
// dropped here. Result order is unspecified; the caller sorts by relative
// path before writing, so the output is identical to a sequential read.
func readConcurrently(candidates []candidate, maxWorkers int, logger *zap.Logger) []CollectedFile {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	if maxWorkers > len(candidates) {
		maxWorkers = len(candidates)
	}

	jobs := make(chan candidate, len(candidates))
	results := make(chan CollectedFile, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				content, ok := readFileContent(c.absPath, c.relPath, logger)
				if !ok {
					continue
				}
				results <- CollectedFile{Path: c.relPath, Content: content}
			}
		}()
	}

	for _, c := range candidates {
		jobs <- c
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	files := make([]CollectedFile, 0, len(candidates))
	for f := range results {
		files = append(files, f)
	}
	return files
}
