package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen"
)

// addConfigFlags registers the matchgen.Config fields as flags.
func addConfigFlags(cmd *cobra.Command, funcName, valueType string) {
	f := cmd.Flags()
	f.String("func", funcName, "Name of the generated function")
	f.String("type", valueType, "Go type of the matched values")
	f.String("input", string(matchgen.InputSlice), "Input kind: slice or cursor")
	f.String("input-type", "", "Slice element container: []byte (default) or string")
	f.String("strategy", string(matchgen.StrategyTree), "Generator for slice input: tree or flat")
	f.String("result", string(matchgen.ResultRemainder), "What to return besides the value: remainder or count (flat only)")
	f.String("doc", "", "Documentation comment for the generated function")
	f.Bool("nolint", false, "Emit a //nolint directive for complexity linters")
	f.String("package", "", "Emit a complete file in this package")
}

func configFlags(cmd *cobra.Command) (matchgen.Config, error) {
	f := cmd.Flags()
	var cfg matchgen.Config
	var input, strategy, result string
	for name, dst := range map[string]*string{
		"func":       &cfg.FuncName,
		"type":       &cfg.ValueType,
		"input":      &input,
		"input-type": &cfg.InputType,
		"strategy":   &strategy,
		"result":     &result,
		"doc":        &cfg.Doc,
		"package":    &cfg.Package,
	} {
		v, err := f.GetString(name)
		if err != nil {
			return cfg, err
		}
		*dst = v
	}
	nolint, err := f.GetBool("nolint")
	if err != nil {
		return cfg, err
	}
	cfg.Input = matchgen.Input(input)
	cfg.Strategy = matchgen.Strategy(strategy)
	cfg.Result = matchgen.Result(result)
	cfg.Nolint = nolint
	return cfg, nil
}
