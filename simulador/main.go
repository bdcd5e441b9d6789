package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mfcarvalho/simulador/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree. It only acts when the shell
// is asking for completions (COMP_LINE is set), otherwise it returns
// immediately.
func completion() {
	simFlags := map[string]complete.Predictor{
		"f":            predict.Files("*.json"),
		"s":            predict.Something,
		"from":         predict.Something,
		"to":           predict.Something,
		"initial":      predict.Something,
		"monthly":      predict.Something,
		"dividends":    predict.Nothing,
		"reinvest":     predict.Nothing,
		"rf":           predict.Something,
		"trading-days": predict.Something,
	}

	cmd := &complete.Command{
		Sub: map[string]*complete.Command{
			"simulate": {Flags: merge(simFlags, map[string]complete.Predictor{"json": predict.Nothing})},
			"chart":    {Flags: merge(simFlags, map[string]complete.Predictor{"o": predict.Files("*.png")})},
			"assist":   {Flags: simFlags},
			"fetch": {Flags: map[string]complete.Predictor{
				"s":    predict.Something,
				"from": predict.Something,
				"to":   predict.Something,
				"o":    predict.Files("*.json"),
			}},
			"topic": {Args: predict.Set{"readme", "simulation", "metrics", "fixtures", "*"}},
		},
	}
	cmd.Complete("simulador")
}

func merge(maps ...map[string]complete.Predictor) map[string]complete.Predictor {
	out := map[string]complete.Predictor{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
