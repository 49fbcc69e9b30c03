package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codecampus/pathway/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status <run-id>",
	Short: "Show the state of an assessment run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		run, err := st.RunRepo().Get(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no run with ID %q", args[0])
			}
			return err
		}

		fmt.Printf("run:     %s\n", run.ID)
		fmt.Printf("student: %s  node: %s  channel: %s\n", run.Student, run.NodeID, run.Channel)
		printRun(run)
		return nil
	},
}
