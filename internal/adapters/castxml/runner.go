// Package castxml invokes the castxml front-end to produce GCC-XML
// compatible dump files.
package castxml

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes castxml on source, writing the dump to the dump path. It
// blocks until the process exits; stdout and stderr are drained into the
// logger line by line so a chatty tool never fills a pipe. When the config
// carries a timeout the process is killed once it elapses.
func (r *Runner) Run(ctx context.Context, source, dump string, cfg *domain.Config) error {
	if cfg.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ToolTimeout)
		defer cancel()
	}

	args := CommandLine(source, dump, cfg)
	cmd := exec.CommandContext(ctx, cfg.ToolPath, args...) //nolint:gosec // tool path comes from config
	cmd.Dir = cfg.WorkingDir
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		// A failed run may leave a truncated dump behind.
		_ = os.Remove(dump)
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrToolInvocation, err.Error()),
			"source", source), "exit_code", exitCode)
	}

	// Some tool versions report success without writing anything.
	if _, err := os.Stat(dump); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrToolInvocation, "tool exited successfully but produced no dump"),
			"source", source), "dump", dump)
	}
	return nil
}

// CommandLine builds the castxml argument list for parsing source into dump.
func CommandLine(source, dump string, cfg *domain.Config) []string {
	args := []string{"-c", "--castxml-gccxml"}

	if cfg.Compiler != "" {
		args = append(args, "--castxml-cc-gnu", cfg.Compiler)
	}
	args = append(args, cfg.CFlags...)
	args = append(args, "-I"+cfg.WorkingDir)
	for _, dir := range cfg.IncludePaths {
		args = append(args, "-I"+dir)
	}
	for _, sym := range cfg.Defines {
		args = append(args, "-D"+sym)
	}
	for _, sym := range cfg.Undefines {
		args = append(args, "-U"+sym)
	}
	if len(cfg.StartDecls) > 0 {
		args = append(args, "--castxml-start", strings.Join(cfg.StartDecls, ","))
	}

	args = append(args, "-o", dump, source)
	return args
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
