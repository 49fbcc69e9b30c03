package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/codecampus/pathway/internal/app"
	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/scheduler"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a student's work for assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		student, _ := cmd.Flags().GetString("student")
		node, _ := cmd.Flags().GetString("node")
		channel, _ := cmd.Flags().GetString("channel")
		priority, _ := cmd.Flags().GetInt("priority")
		rubricVersion, _ := cmd.Flags().GetString("rubric")
		wait, _ := cmd.Flags().GetBool("wait")

		artifact, err := buildArtifact(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(ctx, app.Options{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer a.Close()

		runID, err := a.Scheduler.Submit(ctx, scheduler.SubmitRequest{
			Student:       student,
			NodeID:        node,
			Channel:       pathgraph.Channel(channel),
			RubricVersion: rubricVersion,
			Artifact:      artifact,
			Priority:      priority,
		})
		if err != nil {
			return err
		}

		fmt.Println("run:", runID)
		if !wait {
			return nil
		}

		run, err := awaitRun(ctx, a, runID)
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	},
}

func init() {
	submitCmd.Flags().String("student", "", "Student ID (required)")
	submitCmd.Flags().String("node", "", "Curriculum node ID (required)")
	submitCmd.Flags().String("channel", "B", "Channel the work was done on (A, B, or C)")
	submitCmd.Flags().Int("priority", 0, "Dispatch priority (higher runs first)")
	submitCmd.Flags().String("rubric", "", "Rubric version (default: latest)")
	submitCmd.Flags().String("idea-file", "", "File containing the project idea text")
	submitCmd.Flags().StringSlice("ui-image", nil, "UI screenshot path or URL (repeatable)")
	submitCmd.Flags().String("code-repo", "", "Repository URL of the code submission")
	submitCmd.Flags().StringSlice("snippet-file", nil, "File containing a code snippet (repeatable)")
	submitCmd.Flags().Bool("wait", false, "Block until the run settles and print the result")

	submitCmd.MarkFlagRequired("student")
	submitCmd.MarkFlagRequired("node")
}

func buildArtifact(cmd *cobra.Command) (assessment.Artifact, error) {
	var artifact assessment.Artifact

	if path, _ := cmd.Flags().GetString("idea-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return artifact, fmt.Errorf("read idea file: %w", err)
		}
		artifact.IdeaText = strings.TrimSpace(string(data))
	}

	artifact.UIImages, _ = cmd.Flags().GetStringSlice("ui-image")
	artifact.CodeRepo, _ = cmd.Flags().GetString("code-repo")

	snippetFiles, _ := cmd.Flags().GetStringSlice("snippet-file")
	for _, path := range snippetFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return artifact, fmt.Errorf("read snippet file: %w", err)
		}
		artifact.CodeSnippets = append(artifact.CodeSnippets, string(data))
	}

	return artifact, nil
}

func awaitRun(ctx context.Context, a *app.App, runID string) (*assessment.Run, error) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		run, err := a.Scheduler.Get(ctx, runID)
		if err != nil {
			return nil, err
		}
		if run.Status.Terminal() {
			return run, nil
		}
	}
}

func printRun(run *assessment.Run) {
	fmt.Printf("status:  %s\n", run.Status)
	if run.ErrorMessage != "" {
		fmt.Printf("error:   %s\n", run.ErrorMessage)
	}
	if run.OverallScore != nil {
		fmt.Printf("score:   %.1f (%s)\n", *run.OverallScore, run.Level)
	}
	if len(run.MissingDims) > 0 {
		parts := make([]string, len(run.MissingDims))
		for i, c := range run.MissingDims {
			parts[i] = string(c)
		}
		fmt.Printf("missing: %s\n", strings.Join(parts, ", "))
	}
	for _, iss := range run.Diagnosis {
		fmt.Printf("  [%s] %s: %s\n", iss.Severity, iss.Dimension(), iss.Summary)
	}
	if d := run.Decision; d != nil {
		fmt.Printf("decision: %s -> channel %s\n", d.Type, d.RecommendedChannel)
		if d.NextNodeID != "" {
			fmt.Printf("next:     %s\n", d.NextNodeID)
		}
		fmt.Printf("why:      %s\n", d.Reasoning)
		for _, res := range d.ScaffoldResources {
			fmt.Printf("  scaffold: %s\n", res)
		}
		for _, w := range d.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}
}
