package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
)

var parseCmd = &cobra.Command{
	Use:   "parse [FILE...]",
	Short: "Print the statements of source files",
	Long: `Parses each file and prints its top-level statements. Without a file,
or with "-", the source is read from stdin.

Examples:
  minipy parse main.py
  minipy parse --format json a.py b.py
  echo "x = 1" | minipy parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	p, err := printer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	e := engine()

	failed := 0
	for _, path := range args {
		source, r, err := openSource(cmd, path)
		if err != nil {
			failed++
			printError(cmd.ErrOrStderr(), mdwerror.Wrap(err, "failed to open source file").
				WithCode(mdwerror.CodeIO).
				WithDetail("path", path))
			continue
		}

		result, err := e.ParseReader(source, r)
		r.Close()
		if err != nil {
			failed++
			printError(cmd.ErrOrStderr(), err)
			continue
		}

		logger.Debug("parsed", mdwlog.Fields{
			"source":     result.Source,
			"statements": len(result.Nodes),
			"duration":   result.Duration.String(),
		})
		if err := p.Statements(result.Source, result.Nodes); err != nil {
			return err
		}
	}

	if failed > 0 {
		return mdwerror.Newf("%d of %d sources failed", failed, len(args)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parse")
	}
	return nil
}
