package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger returns a production logger, or a development logger at debug
// level when verbose is set. Both write to stderr.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}

	return l.Sugar(), nil
}
