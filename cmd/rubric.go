package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/rubric"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Inspect scoring rubrics",
}

var rubricShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a rubric's weights, criteria, and thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetString("version")
		file, _ := cmd.Flags().GetString("file")

		set, err := loadRubricSet(file)
		if err != nil {
			return err
		}
		r, err := set.Get(version)
		if err != nil {
			return err
		}

		fmt.Printf("rubric %s (available: %s)\n\n", r.Version, strings.Join(set.Versions(), ", "))
		for _, cat := range assessment.AllCategories() {
			fmt.Printf("%s (weight %.2f):\n", cat, r.Weights[cat])
			criteria := r.CriteriaFor(cat)
			names := make([]string, 0, len(criteria))
			for name := range criteria {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				gate := ""
				if r.IsGating(string(cat) + "." + name) {
					gate = "  [gating]"
				}
				fmt.Printf("  %-24s %.2f%s\n", name, criteria[name], gate)
			}
		}
		fmt.Printf("\npass >= %.0f, excellent >= %.0f, diagnosis cap %d\n",
			r.PassThreshold, r.ExcellentThreshold, r.DiagnosisCap)
		return nil
	},
}

var rubricValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rubric YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := rubric.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("rubric file OK: versions %s\n", strings.Join(set.Versions(), ", "))
		return nil
	},
}

func init() {
	rubricShowCmd.Flags().String("version", "", "Rubric version (default: latest)")
	rubricShowCmd.Flags().String("file", "", "Rubric YAML file (default: embedded set)")

	rubricCmd.AddCommand(rubricShowCmd)
	rubricCmd.AddCommand(rubricValidateCmd)
}

func loadRubricSet(file string) (*rubric.Set, error) {
	if file != "" {
		return rubric.LoadFile(file)
	}
	return rubric.DefaultSet(), nil
}
