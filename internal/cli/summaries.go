package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/vid-summify/internal/history"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/svc"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var search, typ, length string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := history.NewFilter()
			filter.Query = strings.TrimSpace(search)
			if typ != "" {
				t, err := model.ParseSummaryType(typ)
				if err != nil {
					return err
				}
				filter.ToggleType(t)
			}
			if length != "" {
				l, err := model.ParseSummaryLength(length)
				if err != nil {
					return err
				}
				filter.ToggleLength(l)
			}

			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}
				if err := svcCtx.Store.FetchAll(ctx); err != nil {
					return err
				}

				items := filter.Apply(svcCtx.Store.Snapshot().Summaries)
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), filter.EmptyMessage())
					return nil
				}
				return writeSummaryTable(cmd.OutOrStdout(), items)
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "search titles, summaries and URLs")
	cmd.Flags().StringVar(&typ, "type", "", "filter by type: brief, detailed, keypoint")
	cmd.Flags().StringVar(&length, "length", "", "filter by length: short, medium, long")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a summary",
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
				writeSummary(cmd.OutOrStdout(), item, plain)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "render the markdown body as plain text")
	return cmd
}

func (a *app) createCmd() *cobra.Command {
	var typ, length string

	cmd := &cobra.Command{
		Use:   "create <youtube-url>",
		Short: "Generate a new summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}

				f := svcCtx.Form
				f.Enter()
				defer f.Leave()

				if !f.Paste(args[0]) {
					fmt.Fprintln(cmd.ErrOrStderr(), "The pasted text does not appear to be a valid YouTube URL")
				}
				if err := applyOptions(f, typ, length); err != nil {
					return err
				}

				item, err := f.Submit(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Summary generated successfully")
				writeSummary(cmd.OutOrStdout(), item, false)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&typ, "type", string(model.SummaryTypeBrief), "summary type: brief, detailed, keypoint")
	cmd.Flags().StringVar(&length, "length", string(model.SummaryLengthMedium), "summary length: short, medium, long")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var url, typ, length string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Regenerate a summary with new options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}

				// 先加载列表，更新结果才能原位替换
				if err := svcCtx.Store.FetchAll(ctx); err != nil {
					return err
				}
				item, err := svcCtx.Store.FetchOne(ctx, args[0])
				if err != nil {
					return err
				}

				// 详情页把摘要交给表单，表单进入编辑模式
				svcCtx.Handoff.Request(item)
				f := svcCtx.Form
				if !f.Enter() {
					return fmt.Errorf("无法进入编辑模式")
				}
				defer f.Leave()

				if cmd.Flags().Changed("url") {
					f.SetVideoURL(url)
				}
				if err := applyOptions(f, typ, length); err != nil {
					return err
				}

				updated, err := f.Submit(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Summary updated successfully")
				writeSummary(cmd.OutOrStdout(), updated, false)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "new YouTube URL")
	cmd.Flags().StringVar(&typ, "type", "", "summary type: brief, detailed, keypoint")
	cmd.Flags().StringVar(&length, "length", "", "summary length: short, medium, long")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Are you sure you want to delete this summary? [y/N] ") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := requireSession(svcCtx); err != nil {
					return err
				}
				if err := svcCtx.Store.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Summary deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) shareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print a shareable message for a summary",
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
				fmt.Fprintln(cmd.OutOrStdout(), model.ShareMessage(item))
				return nil
			})
		},
	}
}

type optionSetter interface {
	SetType(t model.SummaryType)
	SetLength(l model.SummaryLength)
}

// applyOptions 空字符串表示保持表单当前值
func applyOptions(f optionSetter, typ, length string) error {
	if typ != "" {
		t, err := model.ParseSummaryType(typ)
		if err != nil {
			return err
		}
		f.SetType(t)
	}
	if length != "" {
		l, err := model.ParseSummaryLength(length)
		if err != nil {
			return err
		}
		f.SetLength(l)
	}
	return nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
