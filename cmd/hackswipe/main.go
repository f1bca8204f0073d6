package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/hackswipe/internal/auth"
	"github.com/robby/hackswipe/internal/domain"
	"github.com/robby/hackswipe/internal/convert"
	"github.com/robby/hackswipe/internal/corpus"
	"github.com/robby/hackswipe/internal/persist"
	"github.com/robby/hackswipe/internal/session"
	"github.com/robby/hackswipe/internal/shuffle"
	"github.com/robby/hackswipe/internal/supabase"
	"github.com/robby/hackswipe/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	data            string
	seed            int
	stateDir        string
	ephemeral       bool
	credentials     string
	supabaseURL     string
	supabaseAnonKey string
	logFile         string
}

func main() {
	cfg := &config{}

	rootCmd := newRootCmd(cfg)
	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HACKSWIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "hackswipe",
		Short: "Swipe through hackathon projects in your terminal",
		Long: `hackswipe is a terminal UI for browsing a corpus of hackathon projects
one card at a time: swipe right to like, left to pass.

The deck order is a deterministic shuffle, so resetting always replays the
same sequence. Progress is saved locally by default; configure a Supabase
project URL, anon key, and credentials to sync it remotely instead.`,
		Args:          cobra.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.data, "data", "projects.json", "path to the project corpus JSON (env: HACKSWIPE_DATA)")
	fs.IntVar(&cfg.seed, "seed", shuffle.Seed, "shuffle seed (env: HACKSWIPE_SEED)")
	fs.StringVar(&cfg.stateDir, "state-dir", "", "directory for local session state, defaults to the user config dir (env: HACKSWIPE_STATE_DIR)")
	fs.BoolVar(&cfg.ephemeral, "ephemeral", false, "do not load or save any session state (env: HACKSWIPE_EPHEMERAL)")
	fs.StringVar(&cfg.credentials, "credentials", "", "path to a credentials JSON file (env: HACKSWIPE_CREDENTIALS)")
	fs.StringVar(&cfg.supabaseURL, "supabase-url", "", "Supabase project URL for remote sync (env: HACKSWIPE_SUPABASE_URL)")
	fs.StringVar(&cfg.supabaseAnonKey, "supabase-anon-key", "", "Supabase anon key (env: HACKSWIPE_SUPABASE_ANON_KEY)")
	fs.StringVar(&cfg.logFile, "log-file", "", "write logs to this file, disabled when empty (env: HACKSWIPE_LOG_FILE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <scraped.json> <projects.json>",
		Short: "Convert scraped hackathon data into the corpus format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := convert.File(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Converted %d projects to %s\n", n, args[1])
			return nil
		},
	}
}

func run(cfg *config) error {
	logger, closeLog, err := newLogger(cfg.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	projects, err := corpus.Load(cfg.data)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if len(projects) == 0 {
		return fmt.Errorf("corpus %s contains no projects", cfg.data)
	}

	sess := session.New(projects, cfg.seed)
	ctx := context.Background()

	store, identity, err := newStore(cfg, logger)
	if err != nil {
		return err
	}

	var saver *persist.Saver
	if store != nil {
		st, id := store, identity
		saver = persist.NewSaver(persist.DefaultDebounce, func(snap domain.Snapshot) {
			if err := st.Save(ctx, id, snap); err != nil {
				logger.Error("saving session failed", "identity", id, "error", err)
			}
		})
	}

	app := tui.NewAppModel(sess, store, saver, identity, logger, ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	// Any save still inside the debounce window is written before exit.
	if saver != nil {
		saver.Flush(sess.Snapshot())
		saver.Stop()
	}

	return nil
}

// newStore selects the persistence backend: Supabase when fully configured
// with credentials, a local file store otherwise, or nothing for ephemeral
// runs. The returned identity keys the saved snapshot.
func newStore(cfg *config, logger *slog.Logger) (persist.Store, string, error) {
	if cfg.ephemeral {
		return nil, "", nil
	}

	if cfg.supabaseURL != "" && cfg.supabaseAnonKey != "" {
		creds, err := auth.GetCredentials(cfg.credentials)
		switch {
		case err == nil:
			client, err := supabase.New(cfg.supabaseURL, cfg.supabaseAnonKey, creds)
			if err != nil {
				return nil, "", fmt.Errorf("creating Supabase client: %w", err)
			}
			logger.Info("using remote persistence", "user", creds.UserID)
			return client, creds.UserID, nil
		case errors.Is(err, auth.ErrNoIdentity):
			logger.Info("no credentials found, falling back to local persistence")
		default:
			return nil, "", fmt.Errorf("loading credentials: %w", err)
		}
	}

	dir := cfg.stateDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", fmt.Errorf("resolving state dir: %w", err)
		}
		dir = filepath.Join(configDir, "hackswipe")
	}

	store, err := persist.NewFileStore(dir)
	if err != nil {
		return nil, "", fmt.Errorf("creating file store: %w", err)
	}
	return store, "local", nil
}

// newLogger returns a file-backed slog logger, or a discarding one when no
// log file is configured. The TUI owns the terminal, so stderr is not an
// option while the program runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }, nil
}
