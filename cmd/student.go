package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/store"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student learning-path records",
}

var studentInitCmd = &cobra.Command{
	Use:   "init <student-id>",
	Short: "Create a student record with an initial channel placement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		channelFlag, _ := cmd.Flags().GetString("channel")

		channel := placementChannel(level)
		if channelFlag != "" {
			channel = pathgraph.Channel(channelFlag)
			if !channel.Valid() {
				return fmt.Errorf("unknown channel %q (want A, B, or C)", channelFlag)
			}
		}

		graph := pathgraph.Default()
		roots := graph.Roots()
		if len(roots) == 0 {
			return fmt.Errorf("path graph has no entry node")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.ProgressRepo().Create(cmd.Context(), &store.StudentProgress{
			StudentID:      args[0],
			CurrentNodeID:  roots[0],
			CurrentChannel: channel,
		})
		if err != nil {
			return err
		}

		fmt.Printf("student %s starts at %s on channel %s (%s)\n",
			args[0], roots[0], channel, channel.DisplayName())
		return nil
	},
}

var studentShowCmd = &cobra.Command{
	Use:   "show <student-id>",
	Short: "Show a student's progress record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.ProgressRepo().Get(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no record for student %q (run 'pathway student init %s' first)", args[0], args[0])
			}
			return err
		}

		fmt.Printf("student:     %s\n", p.StudentID)
		fmt.Printf("node:        %s\n", p.CurrentNodeID)
		fmt.Printf("channel:     %s (%s)\n", p.CurrentChannel, p.CurrentChannel.DisplayName())
		fmt.Printf("frustration: %.2f\n", p.FrustrationLevel)
		fmt.Printf("retries:     %d\n", p.RetryCount)
		if len(p.CompletedNodes) > 0 {
			fmt.Printf("completed:   %s\n", strings.Join(p.CompletedNodes, ", "))
		}
		if len(p.ChannelUsed) > 0 {
			nodes := make([]string, 0, len(p.ChannelUsed))
			for node := range p.ChannelUsed {
				nodes = append(nodes, node)
			}
			sort.Strings(nodes)
			fmt.Println("channels used:")
			for _, node := range nodes {
				fmt.Printf("  %s: %s\n", node, p.ChannelUsed[node])
			}
		}
		return nil
	},
}

var studentChooseCmd = &cobra.Command{
	Use:   "choose <student-id> <node-id>",
	Short: "Resolve a branch choice by moving the student to an unlocked node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, nodeID := args[0], args[1]
		graph := pathgraph.Default()

		if !graph.Has(nodeID) {
			return fmt.Errorf("unknown node %q", nodeID)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		repo := st.ProgressRepo()

		p, err := repo.Get(cmd.Context(), studentID)
		if err != nil {
			return err
		}

		completed := make(map[string]bool, len(p.CompletedNodes))
		for _, id := range p.CompletedNodes {
			completed[id] = true
		}
		if completed[nodeID] {
			return fmt.Errorf("node %q is already completed", nodeID)
		}
		if !graph.IsUnlocked(nodeID, completed) {
			node, _ := graph.Node(nodeID)
			return fmt.Errorf("node %q is locked (prerequisites: %s)",
				nodeID, strings.Join(node.Prerequisites, ", "))
		}

		p.CurrentNodeID = nodeID
		ok, err := repo.CompareAndSwap(cmd.Context(), p.Version, p)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("record changed concurrently, try again")
		}

		fmt.Printf("student %s moved to %s\n", studentID, nodeID)
		return nil
	},
}

var studentHistoryCmd = &cobra.Command{
	Use:   "history <student-id>",
	Short: "List a student's assessment runs, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.RunRepo().ListByStudent(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs")
			return nil
		}

		fmt.Printf("%-36s  %-18s  %-11s  %7s  %s\n", "RUN", "NODE", "STATUS", "SCORE", "DECISION")
		for _, run := range runs {
			score := "-"
			if run.OverallScore != nil {
				score = fmt.Sprintf("%.1f", *run.OverallScore)
			}
			dec := "-"
			if run.Decision != nil {
				dec = string(run.Decision.Type)
			}
			fmt.Printf("%-36s  %-18s  %-11s  %7s  %s\n", run.ID, run.NodeID, run.Status, score, dec)
		}
		return nil
	},
}

func init() {
	studentInitCmd.Flags().Int("level", 1, "Placement level 0-3 (0 starts scaffolded, 3 starts advanced)")
	studentInitCmd.Flags().String("channel", "", "Explicit starting channel, overrides --level")
	studentHistoryCmd.Flags().Int("limit", 20, "Maximum runs to list (0 = all)")

	studentCmd.AddCommand(studentInitCmd)
	studentCmd.AddCommand(studentShowCmd)
	studentCmd.AddCommand(studentChooseCmd)
	studentCmd.AddCommand(studentHistoryCmd)
}

// placementChannel maps an onboarding level to a starting channel:
// complete beginners start scaffolded, experienced students advanced.
func placementChannel(level int) pathgraph.Channel {
	switch {
	case level <= 0:
		return pathgraph.ChannelA
	case level >= 3:
		return pathgraph.ChannelC
	default:
		return pathgraph.ChannelB
	}
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
