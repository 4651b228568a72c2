package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansmoore/UrentScoutsBot/internal/adapters/transport/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Read shift commands from stdin and print every chat to stdout",
		Long: "serve runs the shift tracker on the console. Each input line is \"<worker-id> <command> [target-id]\"; " +
			"\"status\" prints the board. Break timers keep running until input ends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := wireApp(ctx, root.configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.service.Close()

			app.logger.Info("serving console", "now", app.service.Now().Format("2006-01-02 15:04 MST"))
			in := cmd.InOrStdin()
			if isInteractive(in) {
				if err := app.terminal.Hint(console.Usage); err != nil {
					return err
				}
			}

			server := console.NewServer(app.service, app.terminal, app.renderBoard, app.logger.Named("console"))
			return server.Serve(ctx, in)
		},
	}
}

func isInteractive(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
