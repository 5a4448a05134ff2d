package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/internal/codegen"
	"github.com/aretw0/matchgen/pkg/manifest"
)

// EntityOptions configure the entities command.
type EntityOptions struct {
	// Config describes the main decoder. Its ValueType should be string.
	Config matchgen.Config
	// CursorFunc, when set, adds a cursor decoder with this name to the
	// same file. Requires Config.Package.
	CursorFunc string
}

// Entities generates an HTML named character reference decoder from an
// entities.json table.
func Entities(env Env, path string, opts EntityOptions, out Output) error {
	entries, err := manifest.LoadEntities(path)
	if err != nil {
		return err
	}
	env.logger().Debug("Entities loaded", "path", path, "entries", len(entries))

	dec, err := matchgen.New(opts.Config, matchgen.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	if err := dec.Extend(entries...); err != nil {
		return err
	}
	if opts.CursorFunc == "" {
		return emit(env, dec, out)
	}

	if opts.Config.Package == "" {
		return fmt.Errorf("%w: a cursor decoder needs a package", matchgen.ErrInvalidConfig)
	}
	cursorCfg := opts.Config
	cursorCfg.FuncName = opts.CursorFunc
	cursorCfg.Input = matchgen.InputCursor
	cursorCfg.InputType = ""
	cursorCfg.Strategy = ""
	cursorCfg.Result = ""
	cursorCfg.Doc = ""
	cur, err := matchgen.New(cursorCfg, matchgen.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	if err := cur.Extend(entries...); err != nil {
		return err
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := codegen.RenderFile(&buf, opts.Config.Package, dec.Code(), cur.Code()); err != nil {
		return fmt.Errorf("render entities: %w", err)
	}
	elapsed := time.Since(start)

	if err := writeOutput(env, out.Path, buf.Bytes()); err != nil {
		return err
	}
	return recordMetrics(env, out, start, elapsed, buf.Len(), dec, cur)
}
