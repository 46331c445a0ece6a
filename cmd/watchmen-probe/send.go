package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evan-idocoding/watchmen/sink"
)

func newSendCmd() *cobra.Command {
	var (
		reportURL string
		message   string
		userAgent string
		location  string
		fields    []string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one test report to a collection endpoint",
		Long: `Send builds a remote sink, delivers a single test report, and prints
how far delivery got (primary POST, GET fallback, or no attempt).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			diag, err := parseFields(fields)
			if err != nil {
				return err
			}

			opts := []sink.RemoteOption{sink.WithReportURL(reportURL)}
			if userAgent != "" {
				opts = append(opts, sink.WithUserAgent(userAgent))
			}
			if location != "" {
				opts = append(opts, sink.WithLocation(location))
			}
			if diag != nil {
				opts = append(opts, sink.WithDiagnostics(diag))
			}

			res := sink.NewRemote(opts...).Deliver(message)
			printResult(cmd, res)
			if !res.Delivered {
				return fmt.Errorf("report not delivered")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportURL, "url", "", "report endpoint URL")
	cmd.Flags().StringVar(&message, "message", "watchmen probe test report", "report text")
	cmd.Flags().StringVar(&userAgent, "ua", "", "override the reported user agent")
	cmd.Flags().StringVar(&location, "location", "", "override the reported origin location")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "diagnostic field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func parseFields(raw []string) (sink.DiagnosticSource, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	fields := make([]sink.Field, 0, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --field %q (want key=value)", kv)
		}
		fields = append(fields, sink.Field{Key: k, Value: v})
	}
	return sink.NewStaticDiagnostics(fields...), nil
}

func printResult(cmd *cobra.Command, res sink.Result) {
	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	switch {
	case res.Delivered && res.Last == sink.AttemptPrimary:
		fmt.Fprintln(out, ok("ok"), "delivered via primary POST")
	case res.Delivered && res.Last == sink.AttemptFallback:
		fmt.Fprintln(out, ok("ok"), "delivered via GET fallback")
	case res.Last == sink.AttemptNone:
		fmt.Fprintln(out, bad("failed"), "no transport available; nothing attempted")
	default:
		fmt.Fprintln(out, bad("failed"), "both attempts failed:", res.Err)
	}
}
