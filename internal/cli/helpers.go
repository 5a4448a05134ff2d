package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/internal/logging"
	"github.com/aretw0/matchgen/internal/metrics"
	"github.com/aretw0/matchgen/internal/presentation/tui"
)

// Env carries the process surroundings every command needs.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewEnv builds the environment of a real run. Logs go to stderr; in
// verbose mode they include debug records, otherwise only warnings and
// errors.
func NewEnv(stdout, stderr io.Writer, verbose bool) Env {
	return Env{
		Stdout: stdout,
		Stderr: stderr,
		Logger: createLogger(stderr, verbose),
	}
}

func createLogger(w io.Writer, verbose bool) *slog.Logger {
	return logging.New(w, logging.Level(verbose))
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.NewNop()
	}
	return e.Logger
}

func (e Env) status() *tui.Status {
	w := e.Stderr
	if w == nil {
		w = io.Discard
	}
	return tui.NewStatus(w)
}

// Output says where generated source goes and what else a run records.
type Output struct {
	// Path is the destination file. Empty or "-" writes to Stdout.
	Path string
	// MetricsTextfile, when set, receives the run's metrics in the
	// node_exporter textfile format.
	MetricsTextfile string
}

// emit renders m and writes it according to out.
// Nothing is written if rendering fails.
func emit(env Env, m *matchgen.Matcher, out Output) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeOutput(env, out.Path, buf.Bytes()); err != nil {
		return err
	}
	return recordMetrics(env, out, start, elapsed, buf.Len(), m)
}

// recordMetrics writes one series per matcher to out.MetricsTextfile.
// The output size and duration cover everything rendered in the run.
func recordMetrics(env Env, out Output, start time.Time, elapsed time.Duration, size int, ms ...*matchgen.Matcher) error {
	if out.MetricsTextfile == "" {
		return nil
	}
	rec := metrics.NewRecorder()
	for _, m := range ms {
		rec.Observe(metrics.Run{
			Func:        m.Config().FuncName,
			Strategy:    m.Strategy(),
			Stats:       m.Tree().Stats(),
			OutputBytes: size,
			Duration:    elapsed,
			At:          start,
		})
	}
	if err := rec.WriteTextfile(out.MetricsTextfile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	env.logger().Debug("Metrics written", "path", out.MetricsTextfile)
	return nil
}

func writeOutput(env Env, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := env.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	env.logger().Info("File written", "path", path, "bytes", len(data))
	env.status().Success("wrote %s (%d bytes)", path, len(data))
	return nil
}
