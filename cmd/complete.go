package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the dash command line.
func Completion() *complete.Command {
	dateFlag := predict.Something
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"metrics": {Flags: map[string]complete.Predictor{
				"d":    dateFlag,
				"u":    predict.Nothing,
				"w":    predict.Something,
				"html": predict.Files("*.html"),
			}},
			"positions": {Flags: map[string]complete.Predictor{
				"d":    dateFlag,
				"u":    predict.Nothing,
				"save": predict.Nothing,
			}},
			"close": {Flags: map[string]complete.Predictor{
				"d": dateFlag,
				"u": predict.Nothing,
			}},
			"pnl": {Flags: map[string]complete.Predictor{
				"d": dateFlag,
				"p": predict.Set{"day", "week", "month", "quarter", "year"},
			}},
			"import-history": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.jsonl"),
			}},
			"topic": {Args: predict.Set{"readme", "metrics", "fifo", "calendar", "files", "config"}},
			"help":  {},
			"flags": {},
		},
	}
}
