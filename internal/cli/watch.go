package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fachebot/vid-summify/internal/scheduler"
	"github.com/fachebot/vid-summify/internal/summary"
	"github.com/fachebot/vid-summify/internal/svc"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the summary list fresh and print changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				var mu sync.Mutex
				last := -1
				cancel := svcCtx.Store.Subscribe(func(s summary.State) {
					mu.Lock()
					defer mu.Unlock()
					if s.Loading {
						return
					}
					if s.Error != "" {
						fmt.Fprintf(out, "[%s] refresh failed: %s\n", time.Now().Format("15:04:05"), s.Error)
						return
					}
					if len(s.Summaries) != last {
						last = len(s.Summaries)
						fmt.Fprintf(out, "[%s] %d summaries\n", time.Now().Format("15:04:05"), last)
					}
				})
				defer cancel()

				timeout := time.Duration(svcCtx.Config.API.Timeout) * time.Second
				refresher := scheduler.NewRefresher(svcCtx.Store, svcCtx.Session, svcCtx.Config.Refresh.Cron, timeout)
				if err := refresher.Start(); err != nil {
					return err
				}
				defer refresher.Stop()
				refresher.RefreshNow()

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				<-ctx.Done()
				return nil
			})
		},
	}
}
