package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/playback"
	"github.com/fachebot/vid-summify/internal/svc"
	"github.com/spf13/cobra"
)

func (a *app) speakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <id>",
		Short: "Read a summary aloud (Ctrl-C stops)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}
				item, err := svcCtx.Store.FetchOne(ctx, args[0])
				if err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				idle := make(chan struct{}, 1)
				cancel := svcCtx.Playback.Subscribe(func(s playback.State) {
					if s.Status == playback.Idle {
						select {
						case idle <- struct{}{}:
						default:
						}
					}
				})
				defer cancel()

				if err := svcCtx.Playback.Play(ctx, item.Text); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Speaking %q ...\n", item.DisplayTitle())

				select {
				case <-idle:
				case <-ctx.Done():
					fmt.Fprintln(cmd.OutOrStdout(), "Stopped")
				}
				return svcCtx.Playback.Stop(context.Background())
			})
		},
	}
}

func (a *app) voicesCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the voices of the speech engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				var (
					voices []model.Voice
					err    error
				)
				if refresh {
					voices, err = svcCtx.Playback.RefreshVoices(ctx)
				} else {
					voices, err = svcCtx.Playback.ListVoices(ctx)
				}
				if err != nil {
					return err
				}

				current := svcCtx.Playback.Settings().VoiceID
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "\tID\tNAME\tLANGUAGE")
				for _, v := range voices {
					mark := ""
					if v.Identifier == current {
						mark = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, v.Identifier, v.Name, v.Language)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reload the voice list from the engine")
	return cmd
}

func (a *app) ttsCmd() *cobra.Command {
	var (
		rate, pitch float64
		voice       string
	)

	cmd := &cobra.Command{
		Use:   "tts",
		Short: "Show or change the speech settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				p := svcCtx.Playback
				if cmd.Flags().Changed("rate") {
					if err := p.SetRate(ctx, rate); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("pitch") {
					if err := p.SetPitch(ctx, pitch); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("voice") {
					if err := p.SetVoice(ctx, voice); err != nil {
						return err
					}
				}

				s := p.Settings()
				voiceName := "System Default"
				if s.VoiceID != "" {
					// 语音列表获取失败时直接显示 id
					voiceName = s.VoiceID
					if voices, err := p.ListVoices(ctx); err == nil {
						voiceName = model.VoiceName(voices, s.VoiceID)
					}
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Rate:  %.2fx\n", s.Rate)
				fmt.Fprintf(out, "Pitch: %.2fx\n", s.Pitch)
				fmt.Fprintf(out, "Voice: %s\n", voiceName)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&rate, "rate", 1.0, "speech rate (0.5 - 2.0)")
	cmd.Flags().Float64Var(&pitch, "pitch", 1.0, "speech pitch (0.5 - 2.0)")
	cmd.Flags().StringVar(&voice, "voice", "", "voice id, empty for the system default")
	return cmd
}
