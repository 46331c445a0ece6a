package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/evan-idocoding/watchmen/guardian"
	"github.com/evan-idocoding/watchmen/sink"
)

func newStormCmd() *cobra.Command {
	var (
		scenarioPath string
		reportURL    string
		count        int
		delay        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "storm",
		Short: "Replay an error-storm scenario through a local Guardian",
		Long: `Storm wires a Guardian with a console sink (and a remote sink when --url
is given), then fires each scenario event after its delay. Events run
concurrently, so overlapping delays exercise the dispatcher under fan-in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *scenario
				err error
			)
			if scenarioPath != "" {
				s, err = loadScenario(scenarioPath)
				if err != nil {
					return err
				}
			} else {
				if count <= 0 {
					return fmt.Errorf("--count must be positive")
				}
				s = uniformScenario(count, delay)
			}

			g := guardian.New(guardian.WithSinks(
				sink.NewConsole(sink.WithConsoleWriter(cmd.OutOrStdout())),
			))
			if reportURL != "" {
				g.AddSink(sink.NewRemote(sink.WithReportURL(reportURL)))
			}

			start := time.Now()
			grp, ctx := errgroup.WithContext(cmd.Context())
			for _, ev := range s.Events {
				ev := ev
				grp.Go(func() error {
					timer := time.NewTimer(time.Duration(ev.Delay))
					defer timer.Stop()
					select {
					case <-timer.C:
					case <-ctx.Done():
						return ctx.Err()
					}
					if ev.Panics {
						g.Guard("probe storm", func() { panic(ev.Message) })
					} else {
						g.LogError(errors.New(ev.Message))
					}
					return nil
				})
			}
			if err := grp.Wait(); err != nil {
				return err
			}

			done := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s fired %d events in %s\n",
				done("storm complete:"), len(s.Events), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (events: [{message, delay, panic}])")
	cmd.Flags().StringVar(&reportURL, "url", "", "also deliver each report to this endpoint")
	cmd.Flags().IntVar(&count, "count", 5, "event count when no scenario file is given")
	cmd.Flags().DurationVar(&delay, "delay", 10*time.Millisecond, "spacing between synthetic events")
	return cmd
}
