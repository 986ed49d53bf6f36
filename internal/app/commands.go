package app

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/oshokin/textkit/internal/config"
	"github.com/oshokin/textkit/internal/fileutil"
	"github.com/oshokin/textkit/internal/logger"
)

// ExecuteReadCommand prints the content of the file at path.
func ExecuteReadCommand(ctx context.Context, cfg *config.Config, path string) {
	ctx = withRunID(ctx)

	if err := newHostApp(cfg).Read(ctx, path); err != nil {
		logger.Fatalf(ctx, "Failed to read file: %v", err)
	}
}

// ExecuteWriteCommand writes the arguments, or stdin, to the file at path.
func ExecuteWriteCommand(ctx context.Context, cfg *config.Config, path string, args []string) {
	ctx = withRunID(ctx)

	if err := newHostApp(cfg).Write(ctx, path, args); err != nil {
		logger.Fatalf(ctx, "Failed to write file: %v", err)
	}
}

// ExecuteUpperCommand converts the input to uppercase.
func ExecuteUpperCommand(ctx context.Context, cfg *config.Config, args []string, opts CaseOptions) {
	ctx = withRunID(ctx)

	if err := newHostApp(cfg).Upper(ctx, args, opts); err != nil {
		logger.Fatalf(ctx, "Failed to convert to uppercase: %v", err)
	}
}

// ExecuteLowerCommand converts the input to lowercase.
func ExecuteLowerCommand(ctx context.Context, cfg *config.Config, args []string, opts CaseOptions) {
	ctx = withRunID(ctx)

	if err := newHostApp(cfg).Lower(ctx, args, opts); err != nil {
		logger.Fatalf(ctx, "Failed to convert to lowercase: %v", err)
	}
}

// ExecuteConfigInitCommand writes cfg to path.
func ExecuteConfigInitCommand(ctx context.Context, cfg *config.Config, path string) {
	ctx = withRunID(ctx)

	if err := newHostApp(cfg).InitConfig(ctx, path); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}
}

func newHostApp(cfg *config.Config) *App {
	files := fileutil.NewAccessor(afero.NewOsFs(), cfg.ParsedFilePermissions)

	return New(cfg, files, os.Stdin, os.Stdout)
}

func withRunID(ctx context.Context) context.Context {
	return logger.WithKV(ctx, "run_id", uuid.NewString())
}
