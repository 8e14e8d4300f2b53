// Command stepgen regenerates the step tables checked in as table_gen.go
// in the repository root.
package main

import (
	"io/ioutil"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"

	step "github.com/numbatch/go-step"
	"github.com/numbatch/go-step/internal/gen"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	var out string

	cmd := &cobra.Command{
		Use:           "stepgen",
		Short:         "Regenerate the radix digit-step tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := make([]step.Table, 0, 35)
			for radix := uint(2); radix <= 36; radix++ {
				t, err := step.BuildTable(radix)
				if err != nil {
					return err
				}
				tables = append(tables, t)
			}

			src, err := gen.Render(tables)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := os.Stdout.Write(src)
				return err
			}
			if err := ioutil.WriteFile(out, src, 0644); err != nil {
				return err
			}
			level.Info(logger).Log("msg", "wrote step tables", "path", out, "radixes", len(tables))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "table_gen.go", "file to write the generated tables to, or - for stdout")

	if err := cmd.Execute(); err != nil {
		level.Error(logger).Log("msg", "generating step tables failed", "err", err)
		os.Exit(1)
	}
}
