package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// InitDotEnv loads variables from .env files into the process environment.
// Missing files are ignored and variables already set are never overridden.
type InitDotEnv struct {
	Files []string
}

// Initialize loads the configured files, defaulting to ".env".
func (ide InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	files := ide.Files
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return ctx, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return ctx, nil
}
