package importer

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/flameshq/flames/internal/domain"
	"github.com/flameshq/flames/internal/validation"
)

// Validator checks one document against a collection
type Validator interface {
	Validate(collection string, raw map[string]interface{}) (domain.Record, error)
}

// Result is the outcome for the document at Index of a batch
type Result struct {
	Index  int
	Record domain.Record
	Errors validation.Errors
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ValidateAll validates docs with at most workers documents in flight.
// Results keep the input order. Field failures are recorded per result; any
// other error, such as an unknown collection, aborts the batch.
func ValidateAll(ctx context.Context, v Validator, collection string, docs []map[string]interface{}, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := v.Validate(collection, doc)
			if err != nil {
				var fieldErrs validation.Errors
				if !errors.As(err, &fieldErrs) {
					return err
				}
				results[i] = Result{Index: i, Errors: fieldErrs}
				return nil
			}
			results[i] = Result{Index: i, Record: rec}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	zap.L().Info("batch validated",
		zap.String("collection", collection),
		zap.Int("documents", len(docs)),
		zap.Int("failed", failed))
	return results, nil
}
