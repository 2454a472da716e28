package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/traindelay/internal/assets"
	"github.com/ziadkadry99/traindelay/internal/progress"
	"github.com/ziadkadry99/traindelay/internal/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every mapped plot exists in the figures directory",
	Long:  `Scans the figures directory and reports, per question page, whether its plot is present, missing or unmapped, plus any images no page uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := assets.Scan(cfg.FigsDir, registry.Default(), progress.NewReporter("Checking plots"))
		if err != nil {
			return err
		}

		strict, _ := cmd.Flags().GetBool("strict")
		return writeCheckReport(os.Stdout, os.Stderr, report, strict)
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit non-zero when a mapped plot is missing")
	rootCmd.AddCommand(checkCmd)
}

// writeCheckReport prints one line per page and per unused image to out and
// a summary to status. In strict mode a missing plot is an error.
func writeCheckReport(out, status io.Writer, report *assets.Report, strict bool) error {
	for _, p := range report.Pages {
		switch p.Status {
		case assets.StatusPresent:
			fmt.Fprintf(out, "  ok       %s  %s\n", p.Page, p.File)
		case assets.StatusMissing:
			fmt.Fprintf(out, "  missing  %s  %s\n", p.Page, p.File)
		default:
			fmt.Fprintf(out, "  unmapped %s\n", p.Page)
		}
	}
	for _, o := range report.Orphans {
		fmt.Fprintf(out, "  unused   %s\n", o)
	}

	missing := len(report.Missing())
	fmt.Fprintf(status, "%d of %d plots missing in %s\n", missing, len(report.Pages), report.Dir)

	if strict && missing > 0 {
		return fmt.Errorf("%d plot file(s) missing", missing)
	}
	return nil
}
