package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"collection-sync/feature/feed"
	"collection-sync/feature/feed/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for feed sync command
	dryRunFeed bool
	yesConfirm bool
	// Flags for feed diff command
	jsonOutput bool
)

// feedCmd is the parent command for all feed operations.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Inspect and mirror feeds",
	Long:  `List published feeds, preview their differences with the database and synchronize them.`,
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published feeds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := feed.NewService(rt.client, rt.cfg.Storage.Bucket, rt.logger, rt.db, rt.cfg.Feed)
		names, err := svc.ListFeeds(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var feedDiffCmd = &cobra.Command{
	Use:   "diff <name>",
	Short: "Show how the stored feed differs from its snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := feedService(cmd.Context())
		if err != nil {
			return err
		}
		defer l.Sync()

		report, err := svc.Diff(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		s := report.Summary
		l.Info("Feed diff",
			zap.String("feed", report.Feed),
			zap.Int("stored", report.Stored),
			zap.Int("entries", report.Entries),
			zap.Int("removals", s.Removals),
			zap.Int("insertions", s.Insertions),
			zap.Int("moves", s.Moves),
			zap.Int("updates", s.Updates),
		)
		for _, p := range report.Patches {
			fmt.Printf("--- %s\n%s", p.ID, p.Patch)
		}
		return nil
	},
}

var feedPublishCmd = &cobra.Command{
	Use:   "publish <name> <file>",
	Short: "Upload a snapshot file for a feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("invalid snapshot %s: %w", args[1], err)
		}

		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := feed.NewService(rt.client, rt.cfg.Storage.Bucket, rt.logger, rt.db, rt.cfg.Feed)
		return svc.Publish(cmd.Context(), args[0], &snap)
	},
}

var feedSyncCmd = &cobra.Command{
	Use:   "sync <name>",
	Short: "Mirror a feed snapshot into the database",
	Long: `Reconciles the stored rows of a feed with its snapshot.

Examples:
  # Preview only
  feed sync news --dry-run

  # Apply, confirming removals interactively
  feed sync news

  # Apply without prompting
  feed sync news --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runFeedSync,
}

func init() {
	feedDiffCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full diff report as JSON")
	feedSyncCmd.Flags().BoolVar(&dryRunFeed, "dry-run", false, "Compute the outcome without writing")
	feedSyncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm removals (non-interactive)")

	feedCmd.AddCommand(feedListCmd, feedDiffCmd, feedPublishCmd, feedSyncCmd)
	RootCmd.AddCommand(feedCmd)
}

func feedService(ctx context.Context) (*feed.Service, *zap.Logger, error) {
	rt, err := bootstrap(true)
	if err != nil {
		return nil, nil, err
	}
	svc := feed.NewService(rt.client, rt.cfg.Storage.Bucket, rt.logger, rt.db, rt.cfg.Feed)
	if err := svc.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	return svc, rt.logger, nil
}

func runFeedSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	svc, l, err := feedService(ctx)
	if err != nil {
		return err
	}
	defer l.Sync()

	// Plan first, always
	preview, err := svc.Sync(ctx, name, true)
	if err != nil {
		return err
	}
	printSyncReport(l, preview)

	if dryRunFeed {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !preview.Changed {
		return nil
	}
	if preview.Removed > 0 && !confirmRemovals(preview.Removed) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report, err := svc.Sync(ctx, name, false)
	if err != nil {
		return fmt.Errorf("failed to sync feed %s: %w", name, err)
	}
	printSyncReport(l, report)
	return nil
}

func printSyncReport(l *zap.Logger, r *models.SyncReport) {
	l.Info("Sync report",
		zap.String("feed", r.Feed),
		zap.Bool("dry_run", r.DryRun),
		zap.Bool("changed", r.Changed),
		zap.Int("inserted", r.Inserted),
		zap.Int("updated", r.Updated),
		zap.Int("removed", r.Removed),
		zap.Int("skipped", r.Skipped),
		zap.Int("duplicates", r.Duplicates),
		zap.Int("total", r.Total),
	)
}

// confirmRemovals asks for confirmation before rows are deleted.
func confirmRemovals(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %d rows will be deleted. Type 'yes' to confirm: ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
