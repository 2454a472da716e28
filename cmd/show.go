package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/traindelay/internal/registry"
	"github.com/ziadkadry99/traindelay/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [page]",
	Short: "Print a dashboard page to the terminal",
	Long: `Prints one page as plain text. The page is Overview (default) or a
question id such as Q01. Use --list to print the available pages.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			reg := registry.Default()
			for _, id := range reg.Pages() {
				if e, err := reg.Lookup(id); err == nil {
					fmt.Printf("%s  %s\n", id, e.Question)
				} else {
					fmt.Println(id)
				}
			}
			return nil
		}

		page := registry.OverviewPage
		if len(args) == 1 {
			page = normalizePageID(args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		renderer, ds, err := newRenderer(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer ds.Close()

		p, err := renderer.Page(cmd.Context(), page)
		if err != nil {
			return err
		}
		return render.WriteText(os.Stdout, p)
	},
}

// normalizePageID accepts "q1", "Q1", "01" and "overview" for convenience.
func normalizePageID(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, registry.OverviewPage) {
		return registry.OverviewPage
	}
	digits := strings.TrimPrefix(strings.ToUpper(s), "Q")
	if len(digits) == 1 {
		digits = "0" + digits
	}
	return "Q" + digits
}

func init() {
	showCmd.Flags().Bool("list", false, "list the available pages")
	rootCmd.AddCommand(showCmd)
}
