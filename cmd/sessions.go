package cmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sessionsYes bool

// sessionsCmd is the parent command for stored session operations.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List, inspect and delete stored sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(ctx, cfg, l)
		if err != nil {
			return err
		}

		list, err := store.List(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range list {
			fmt.Fprintf(out, "%s  %4d items  %s\n", s.SessionID, s.TotalScanned, s.LansweeperFile)
		}
		l.Info("Sessions listed", zap.Int("count", len(list)))
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print the scans of a stored session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(ctx, cfg, l)
		if err != nil {
			return err
		}

		rec, err := store.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load session %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Session %s (%s)\nStarted %s, ended %s, %d items\n\n",
			rec.SessionID, rec.LansweeperFile,
			rec.StartedAt.Format("2006-01-02 15:04:05"), rec.EndedAt.Format("2006-01-02 15:04:05"),
			rec.TotalScanned)
		for _, it := range rec.Items {
			fmt.Fprintf(out, "%s  %-16s  %-10s  %s\n", it.Timestamp.Format("15:04:05"), it.MatchedSerial, it.State, it.Message())
		}
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		store, err := openStore(ctx, cfg, l)
		if err != nil {
			return err
		}

		if !sessionsYes && !confirm(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), "Delete session "+args[0]+"?") {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := store.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete session %s: %w", args[0], err)
		}
		l.Info("Session deleted", zap.String("session_id", args[0]))
		return nil
	},
}

func init() {
	sessionsDeleteCmd.Flags().BoolVar(&sessionsYes, "yes", false, "Delete without asking")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsDeleteCmd)
	RootCmd.AddCommand(sessionsCmd)
}
