package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecampus/pathway/internal/pathgraph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the curriculum graph",
}

var graphShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List all nodes in dependency order",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := pathgraph.Default()

		fmt.Printf("%-18s  %-28s  %-24s  %s\n", "ID", "NAME", "PREREQUISITES", "UNLOCKS")
		fmt.Println(strings.Repeat("─", 90))
		for _, node := range graph.Nodes() {
			prereqs := strings.Join(node.Prerequisites, ", ")
			if prereqs == "" {
				prereqs = "(entry)"
			}
			succs := strings.Join(graph.Successors(node.ID), ", ")
			if succs == "" {
				succs = "-"
			}
			fmt.Printf("%-18s  %-28s  %-24s  %s\n", node.ID, node.Name, prereqs, succs)
		}
		fmt.Printf("\n%d nodes\n", len(graph.Nodes()))
		return nil
	},
}

var graphNodeCmd = &cobra.Command{
	Use:   "node <node-id>",
	Short: "Show one node's channel tasks and resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := pathgraph.Default()
		node, err := graph.Node(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n", node.ID, node.Name)
		fmt.Println(node.Description)
		fmt.Println()

		for _, ch := range pathgraph.AllChannels() {
			task, ok := node.ChannelTasks[ch]
			if !ok {
				continue
			}
			fmt.Printf("channel %s (%s, ~%dh): %s\n", ch, ch.DisplayName(), node.EstimatedHours[ch], task.Summary)
			for _, req := range task.Requirements {
				fmt.Printf("  - %s\n", req)
			}
		}
		if len(node.RemedyResources) > 0 {
			fmt.Println("\nremedy resources:")
			for _, res := range node.RemedyResources {
				fmt.Printf("  - %s\n", res)
			}
		}
		return nil
	},
}

var graphValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the curriculum graph for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := pathgraph.Default()
		fmt.Printf("graph OK: %d nodes, entry at %s\n",
			len(graph.Nodes()), strings.Join(graph.Roots(), ", "))
		return nil
	},
}

func init() {
	graphCmd.AddCommand(graphShowCmd)
	graphCmd.AddCommand(graphNodeCmd)
	graphCmd.AddCommand(graphValidateCmd)
}
