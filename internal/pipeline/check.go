package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"builder-generator/internal/gen"
)

// FileCheck is the on-disk status of one generated file.
type FileCheck struct {
	File   gen.GeneratedFile
	Status gen.FileStatus
}

// Check renders the builders of a request and compares them with the files
// on disk. It returns every file's status and an error wrapping ErrStale when
// any file is missing or differs.
func Check(ctx context.Context, req Request, logger *zap.SugaredLogger) ([]FileCheck, error) {
	res, err := Run(ctx, req, logger)
	if err != nil {
		return nil, err
	}

	checks := make([]FileCheck, 0, len(res.Files))
	stale := 0

	for _, f := range res.Files {
		status, err := gen.Compare(f)
		if err != nil {
			return nil, err
		}

		if status != gen.StatusUpToDate {
			stale++
		}

		checks = append(checks, FileCheck{File: f, Status: status})
	}

	if stale > 0 {
		return checks, fmt.Errorf("%w: %d of %d files", ErrStale, stale, len(checks))
	}

	return checks, nil
}
