package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/textkit/internal/config"
	"github.com/oshokin/textkit/internal/fileutil"
	"github.com/oshokin/textkit/internal/logger"
	"github.com/oshokin/textkit/internal/strcase"
)

// ErrWriteFailed is returned by lenient writes, which carry no failure detail.
var ErrWriteFailed = errors.New("failed to write file")

// CaseOptions controls where a case command takes its input and sends its output.
type CaseOptions struct {
	// InputFile is read through the content accessor instead of using arguments.
	InputFile string
	// OutputFile receives the result instead of stdout.
	OutputFile string
}

// App runs textkit operations.
type App struct {
	cfg         *config.Config
	files       fileutil.Accessor
	transformer *strcase.Transformer
	stdin       io.Reader
	stdout      io.Writer
}

// New creates an App. cfg must have been validated.
func New(cfg *config.Config, files fileutil.Accessor, stdin io.Reader, stdout io.Writer) *App {
	return &App{
		cfg:         cfg,
		files:       files,
		transformer: strcase.NewTransformer(cfg.ParsedCaseMode),
		stdin:       stdin,
		stdout:      stdout,
	}
}

// Read prints the content of the file at path.
func (a *App) Read(ctx context.Context, path string) error {
	content, err := a.readFile(ctx, path)
	if err != nil {
		return err
	}

	_, err = io.WriteString(a.stdout, content)

	return err
}

// Write stores content in the file at path. The content is the space-joined
// arguments, or everything on stdin when there are none.
func (a *App) Write(ctx context.Context, path string, args []string) error {
	content, err := a.collectInput(args)
	if err != nil {
		return err
	}

	return a.writeFile(ctx, path, content)
}

// Upper prints or stores the uppercase form of the input.
func (a *App) Upper(ctx context.Context, args []string, opts CaseOptions) error {
	return a.convertCase(ctx, args, opts, a.transformer.Upper)
}

// Lower prints or stores the lowercase form of the input.
func (a *App) Lower(ctx context.Context, args []string, opts CaseOptions) error {
	return a.convertCase(ctx, args, opts, a.transformer.Lower)
}

// InitConfig writes the current configuration to path as YAML.
func (a *App) InitConfig(ctx context.Context, path string) error {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.SaveConfig(a.files, path, a.cfg); err != nil {
		return err
	}

	logger.Infof(ctx, "Configuration saved to '%s'", path)

	return nil
}

func (a *App) convertCase(
	ctx context.Context,
	args []string,
	opts CaseOptions,
	convert func(string) string,
) error {
	var (
		input string
		err   error
	)

	if opts.InputFile != "" {
		input, err = a.readFile(ctx, opts.InputFile)
	} else {
		input, err = a.collectInput(args)
	}

	if err != nil {
		return err
	}

	result := convert(input)

	logger.DebugKV(ctx, "Converted case",
		"mode", a.transformer.Mode().String(),
		"size", humanize.Bytes(uint64(len(result))))

	if opts.OutputFile != "" {
		return a.writeFile(ctx, opts.OutputFile, result)
	}

	if opts.InputFile == "" && len(args) > 0 {
		result += "\n"
	}

	_, err = io.WriteString(a.stdout, result)

	return err
}

func (a *App) collectInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	content, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(content), nil
}

func (a *App) readFile(ctx context.Context, path string) (string, error) {
	var content string

	if a.cfg.StrictIO {
		var err error

		content, err = a.files.ReadFile(path)
		if err != nil {
			return "", err
		}
	} else {
		content = a.files.Read(path)
	}

	logger.DebugKV(ctx, "Read file",
		"path", path,
		"size", humanize.Bytes(uint64(len(content))),
		"strict", a.cfg.StrictIO)

	return content, nil
}

func (a *App) writeFile(ctx context.Context, path, content string) error {
	if a.cfg.StrictIO {
		if err := a.files.WriteFile(path, content); err != nil {
			return err
		}
	} else if !a.files.Write(path, content) {
		logger.Warnf(ctx, "Could not write '%s'", path)

		return fmt.Errorf("%w: '%s'", ErrWriteFailed, path)
	}

	logger.Infof(ctx, "Wrote %s to '%s'", humanize.Bytes(uint64(len(content))), path)

	return nil
}
