package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/svc"
	"github.com/spf13/cobra"
)

// app 保存全局参数，每个命令执行时按需创建服务上下文
type app struct {
	configFile string
	verbose    bool
}

// NewRootCmd 构建命令树
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vid-summify",
		Short: "Summarize YouTube videos and listen to the summaries",
		Long: `vid-summify submits YouTube videos to the summary service, keeps a
history of generated summaries and reads them aloud with the local speech
engine.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "f", "etc/config.yaml", "the config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print logs to stderr")

	rootCmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.listCmd(),
		a.showCmd(),
		a.createCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.shareCmd(),
		a.speakCmd(),
		a.voicesCmd(),
		a.ttsCmd(),
		a.watchCmd(),
	)
	return rootCmd
}

// Execute 运行命令行
func Execute() error {
	return NewRootCmd().Execute()
}

// run 加载配置、创建服务上下文并执行 fn，结束后释放资源
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, svcCtx *svc.ServiceContext) error) error {
	c, err := config.LoadFromFile(a.configFile)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	if !a.verbose {
		logger.SetConsoleOutput(io.Discard)
	}
	if err := logger.Setup(c.Log); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}
	defer svcCtx.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := svcCtx.Start(ctx); err != nil {
		return err
	}
	return fn(ctx, svcCtx)
}

// requireSession 未登录时给出提示
func requireSession(svcCtx *svc.ServiceContext) error {
	if !svcCtx.Session.SignedIn() {
		return fmt.Errorf("未登录，请先执行 vid-summify login --token <token>")
	}
	return nil
}
