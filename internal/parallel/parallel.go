package parallel

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of a parallel task.
type Result struct {
	Name    string
	OK      bool
	Err     error
	Output  string
	Elapsed time.Duration
}

// Task is a function that runs in parallel. Output is a short summary shown
// next to the task name, such as the file written.
type Task struct {
	Name string
	Fn   func(ctx context.Context) (string, error)
}

// Progress is where task progress lines are printed.
var Progress io.Writer = os.Stdout

// Run executes tasks in parallel with the given concurrency limit.
// Returns results in the order tasks were submitted. A failing task does not
// cancel the others; tasks not yet started when ctx is done fail with ctx.Err().
func Run(ctx context.Context, tasks []Task, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = 4
	}

	results := make([]Result, len(tasks))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, task := range tasks {
		g.Go(func() error {
			start := time.Now()

			var output string
			err := gctx.Err()
			if err == nil {
				output, err = task.Fn(gctx)
			}
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[i] = Result{Name: task.Name, OK: false, Err: err, Output: output, Elapsed: elapsed}
				fmt.Fprintf(Progress, "  %s %s %s\n", ui.StatusIcon(false), task.Name, ui.Bad.Sprintf("(%v)", err))
				return nil
			}
			results[i] = Result{Name: task.Name, OK: true, Output: output, Elapsed: elapsed}
			fmt.Fprintf(Progress, "  %s %s %s\n", ui.StatusIcon(true), task.Name, ui.Subtle.Sprintf("%s %dms", output, elapsed.Milliseconds()))
			return nil // results are collected, never fail the group
		})
	}

	_ = g.Wait()
	return results
}

// Failed returns the results that did not succeed.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK {
			out = append(out, r)
		}
	}
	return out
}
