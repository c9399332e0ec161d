package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"stock-check/core/ledger"
	"stock-check/core/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanRegisterPath string
	scanKeepUnknown  bool
)

// scanCmd runs an operator session in the terminal.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan items from the terminal against a register file",
	Long: `Loads a register file and reads one serial or asset tag per line from stdin,
as a barcode reader types them. Serials missing from the register ask whether to
keep or discard them. Every change is saved to the session store. The session
summary is printed on EOF.

Examples:
  # Interactive scanning
  scan --register lansweeper.xlsx

  # Keep unknown serials without asking
  scan --register lansweeper.csv --yes`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanRegisterPath, "register", "", "Register file (.xlsx or .csv)")
	scanCmd.Flags().BoolVar(&scanKeepUnknown, "yes", false, "Keep serials missing from the register without asking")
	_ = scanCmd.MarkFlagRequired("register")

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	loc, err := cfg.Server.Location()
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg, l)
	if err != nil {
		return err
	}

	table, err := readTable(scanRegisterPath)
	if err != nil {
		return err
	}

	sess := session.New(store, session.WithLogger(l), session.WithLocation(loc))
	summary, err := sess.ImportRegister(ctx, filepath.Base(scanRegisterPath), table, false)
	if err != nil {
		return err
	}
	l.Info("Register loaded",
		zap.String("file", summary.Filename),
		zap.Int("rows", summary.Rows),
		zap.Int("collisions", summary.Collisions),
		zap.String("session_id", summary.SessionID),
	)

	return scanLoop(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout(), scanKeepUnknown)
}

// scanLoop feeds each input line to the session until EOF.
func scanLoop(ctx context.Context, sess *session.Context, in io.Reader, out io.Writer, keepUnknown bool) error {
	reader := bufio.NewReader(in)

	for {
		line, readErr := reader.ReadString('\n')
		if line != "" || readErr == nil {
			if err := scanOne(ctx, sess, reader, out, strings.TrimRight(line, "\r\n"), keepUnknown); err != nil {
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return readErr
		}
	}

	return printSessionSummary(sess, out)
}

func scanOne(ctx context.Context, sess *session.Context, reader *bufio.Reader, out io.Writer, raw string, keepUnknown bool) error {
	res, err := sess.Scan(ctx, raw)
	var persist *ledger.PersistError
	switch {
	case errors.As(err, &persist):
		fmt.Fprintf(out, "warning: %v\n", err)
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "[%s] %s\n", res.Kind, res.Message)

	if !res.Pending {
		return nil
	}
	if keepUnknown || confirm(reader, out, "Keep this serial in the session?") {
		if _, err := sess.Keep(); err != nil {
			return err
		}
		fmt.Fprintln(out, "kept")
		return nil
	}
	if _, err := sess.Discard(ctx); err != nil {
		if !errors.As(err, &persist) {
			return err
		}
		fmt.Fprintf(out, "warning: %v\n", err)
	}
	fmt.Fprintln(out, "discarded")
	return nil
}

func printSessionSummary(sess *session.Context, out io.Writer) error {
	st := sess.Status()
	rep, err := sess.Report()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSession %s: %d scanned, %d pending, %d not found, %d need adjustment\n",
		st.SessionID, rep.Progress.Scanned, rep.Progress.Pending, rep.Progress.NotFound, rep.Progress.Adjustments)
	fmt.Fprintf(out, "Stock: %d expected, %d scanned, %d missing\n",
		rep.Stock.TotalExpected, rep.Stock.ScannedStock, rep.Stock.TotalMissing)
	for _, row := range rep.Rows {
		fmt.Fprintf(out, "  %-10s expected %4d  scanned %4d  divergence %+d\n", row.State, row.Expected, row.Scanned, row.Divergence)
	}
	return nil
}
