package shaderc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one compilation in a batch.
type Job struct {
	Source     []byte
	Mode       CompileMode
	Kind       ShaderKind
	Filename   string
	EntryPoint string
	Options    *CompileOptions
}

// CompileBatch runs jobs on c with at most limit compiles in flight (no
// limit if limit <= 0). Results are in job order.
//
// A failed compilation is reported through its result, not as an error.
// The returned error is the first Compile error or ctx.Err(); cancelling
// ctx stops jobs that have not started but never interrupts a running
// compile.
func CompileBatch(ctx context.Context, c *Compiler, jobs []Job, limit int) ([]*CompilationResult, error) {
	results := make([]*CompilationResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := job.EntryPoint
			if entry == "" && job.Mode != AssembleTextToSPIRV {
				entry = "main"
			}
			res, err := c.Compile(job.Source, job.Mode, job.Kind, job.Filename, entry, job.Options)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
