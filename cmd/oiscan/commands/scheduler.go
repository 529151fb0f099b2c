package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/oiscan/internal/scheduler"
	"github.com/wonny/oiscan/internal/scheduler/jobs"
)

const timeLayout = "2006-01-02 15:04:05"

func newSchedulerCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run fetch + analyze on a cron schedule",
		Long: `스케줄러를 시작하거나 작업을 조회합니다.

Subcommands:
  start   - 스케줄러 시작 (Ctrl+C로 종료)
  list    - 등록된 작업과 다음 실행 시각
  run     - 작업 즉시 실행
  status  - 작업 실행 상태 조회

Example:
  go run ./cmd/oiscan scheduler start
  go run ./cmd/oiscan scheduler list
  go run ./cmd/oiscan scheduler run oi_analysis`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "스케줄러 시작",
			Long: `SCHEDULE_CRON (초 단위 포함 cron) 마다 fetch → analyze 를 실행합니다.
기본값: "0 */5 9-15 * * MON-FRI" (평일 장중 5분마다)`,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withScheduler(root, cmd.OutOrStdout(), func(a *app, sched *scheduler.Scheduler) error {
					return runSchedulerLoop(cmd.Context(), a, sched, cmd.ErrOrStderr())
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "등록된 작업 목록",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withScheduler(root, cmd.OutOrStdout(), func(a *app, sched *scheduler.Scheduler) error {
					return listJobs(cmd.OutOrStdout(), sched, time.Now())
				})
			},
		},
		&cobra.Command{
			Use:   "run [job_name]",
			Short: "작업 즉시 실행",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withScheduler(root, cmd.OutOrStdout(), func(a *app, sched *scheduler.Scheduler) error {
					result, err := sched.RunNow(args[0])
					if err != nil {
						return err
					}
					if !result.Success {
						return fmt.Errorf("job %s failed after %d attempt(s): %s", args[0], result.Attempts, result.Error)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "작업 실행 상태 조회",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withScheduler(root, cmd.OutOrStdout(), func(a *app, sched *scheduler.Scheduler) error {
					printStatus(cmd.OutOrStdout(), sched)
					return nil
				})
			},
		},
	)

	return cmd
}

// withScheduler bootstraps and registers the analysis job
func withScheduler(root *rootOptions, out io.Writer, fn func(*app, *scheduler.Scheduler) error) error {
	a, err := bootstrap(root)
	if err != nil {
		return err
	}

	sched := scheduler.New(a.logger, scheduler.DefaultOptions())
	job := jobs.NewAnalysisJob(newProvider(a), a.settings, a.cfg, out, a.logger)
	if err := sched.AddJob(job); err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	return fn(a, sched)
}

func runSchedulerLoop(ctx context.Context, a *app, sched *scheduler.Scheduler, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sched.Start()

	fmt.Fprintln(out, "=== oiscan scheduler ===")
	if err := listJobs(out, sched, time.Now()); err != nil {
		return err
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	<-ctx.Done()

	fmt.Fprintln(out, "Shutting down scheduler...")
	sched.Stop()
	printStatus(out, sched)

	return nil
}

func listJobs(out io.Writer, sched *scheduler.Scheduler, now time.Time) error {
	stats := sched.GetJobStats()

	fmt.Fprintln(out, "Registered jobs:")
	for _, name := range sched.GetAllJobs() {
		st := stats[name]
		next, err := scheduler.NextRun(st.Schedule, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  - %s [%s] next: %s\n", name, st.Schedule, next.Format(timeLayout))
	}
	return nil
}

func printStatus(out io.Writer, sched *scheduler.Scheduler) {
	stats := sched.GetJobStats()

	fmt.Fprintln(out, "Job Statistics:")
	for _, name := range sched.GetAllJobs() {
		st := stats[name]
		fmt.Fprintf(out, "  %s\n", name)
		fmt.Fprintf(out, "     Schedule: %s\n", st.Schedule)
		fmt.Fprintf(out, "     Total Runs: %d\n", st.TotalRuns)
		fmt.Fprintf(out, "     Success: %d (%.1f%%)\n", st.SuccessCount, st.SuccessRate*100)
		fmt.Fprintf(out, "     Failures: %d\n", st.FailureCount)
		if st.LastRun != nil {
			fmt.Fprintf(out, "     Last Run: %s\n", st.LastRun.Format(timeLayout))
		}
		if st.LastError != "" {
			fmt.Fprintf(out, "     Last Error: %s\n", st.LastError)
		}
	}
}
