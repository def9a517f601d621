package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/com"
	"github.com/Norgate-AV/autoitx/internal/config"
	"github.com/Norgate-AV/autoitx/internal/console"
	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
	"github.com/Norgate-AV/autoitx/internal/version"
)

// openBackend creates the AutoItX3 backend; replaced in tests
var openBackend = func(log logger.LoggerInterface, opts com.Options) (interfaces.Backend, error) {
	return com.Open(log, opts)
}

// exitFunc ends the process after an interrupt; replaced in tests
var exitFunc = os.Exit

// app is the state a subcommand runs with
type app struct {
	cfg     *Config
	file    *config.Config
	log     logger.LoggerInterface
	session *autoit.Session
	out     io.Writer

	mu       sync.Mutex
	cleanups []func()
}

// onInterrupt registers f to run if the process is interrupted before the command returns
func (a *app) onInterrupt(f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cleanups = append(a.cleanups, f)
}

func (a *app) runCleanups() {
	a.mu.Lock()
	cleanups := a.cleanups
	a.cleanups = nil
	a.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// RootCmd is the root command for the autoitx CLI application.
var RootCmd = NewRootCmd()

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "autoitx",
		Short:        "autoitx - Script Windows through the AutoItX3 COM server",
		Version:      version.GetVersion(),
		RunE:         Execute,
		SilenceUsage: true, // Don't show usage on runtime errors
	}

	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	root.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	root.PersistentFlags().StringP("config", "c", "", "config file (default %APPDATA%\\autoitx\\config.toml)")

	root.AddCommand(
		newClipCmd(),
		newIniCmd(),
		newSendCmd(),
		newToolTipCmd(),
		newMouseCmd(),
		newPixelCmd(),
		newProcessCmd(),
		newRegCmd(),
		newDriveCmd(),
		newWinCmd(),
		newSysCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command: it prints the log file with --logs, or help otherwise.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	if !cfg.ShowLogs {
		return cmd.Help()
	}

	file, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return printLogs(cmd.OutOrStdout(), file)
}

func printLogs(w io.Writer, file *config.Config) error {
	opts := logger.LoggerOptions{LogDir: file.Log.Dir}

	if err := logger.PrintLogFile(w, opts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("log file does not exist: %s", logger.GetLogPath(opts))
		}

		return err
	}

	return nil
}

// initializeLogger creates a logger from flags and the config file
func initializeLogger(cfg *Config, file *config.Config, stderr io.Writer) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:    cfg.Verbose,
		LogDir:     file.Log.Dir,
		MaxSize:    file.Log.MaxSize,
		MaxBackups: file.Log.MaxBackups,
		MaxAge:     file.Log.MaxAge,
		Compress:   file.Log.Compress,
		Console:    stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// runWithSession loads config, opens the backend and runs fn with a ready session.
// Messages go to stderr so stdout only carries command results.
func runWithSession(cmd *cobra.Command, fn func(a *app) error) (err error) {
	cfg := NewConfigFromFlags(cmd)

	file, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log, err := initializeLogger(cfg, file, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting autoitx",
		slog.String("command", cmd.CommandPath()),
		slog.String("version", version.GetVersion()),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(cmd.ErrOrStderr(), "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(cmd.ErrOrStderr(), "Check log file for details: %s\n", log.GetLogPath())
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	backend, err := openBackend(log, com.Options{ProgID: file.ProgID})
	if err != nil {
		log.Error("Could not open AutoItX3", slog.Any("error", err))
		return err
	}

	session, err := autoit.NewSession(backend, log)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn("Failed to release AutoItX3", slog.Any("error", cerr))
		}
	}()

	if err := session.System().ApplyOptions(file.Options); err != nil {
		log.Error("Failed to apply AutoIt options", slog.Any("error", err))
		return fmt.Errorf("error applying options: %w", err)
	}

	a := &app{
		cfg:     cfg,
		file:    file,
		log:     log,
		session: session,
		out:     cmd.OutOrStdout(),
	}

	stop := setupSignalHandlers(a)
	defer stop()

	return fn(a)
}

// setupSignalHandlers runs the registered cleanups and exits on Ctrl+C,
// console close or SIGTERM. The returned func removes the handlers.
func setupSignalHandlers(a *app) func() {
	var once sync.Once
	interrupted := func(reason string) {
		once.Do(func() {
			a.log.Info("Interrupted, cleaning up", slog.String("reason", reason))
			a.runCleanups()
			a.log.Debug("Cleanup completed, exiting")
			a.log.Close()
			exitFunc(130)
		})
	}

	stopConsole, err := console.Notify(func(e console.Event) bool {
		a.log.Debug("Received console control event", slog.String("type", e.String()))
		interrupted(e.String())
		return true
	})
	if err != nil {
		a.log.Debug("Console control handler unavailable", slog.Any("error", err))
	}

	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			interrupted(sig.String())
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
		stopConsole()
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, commit and build details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	}
}
