package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"flowpaint/diagrams"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("flowpaint failed")
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		configFile string
		envFile    string
		config     *Config
	)
	cmd := &cobra.Command{
		Use:           "flowpaint",
		Short:         "Render architecture and process diagrams to PNG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile, envFile)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			setupLogging(cfg.LogLevel, os.Stderr)
			config = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (default ~/"+defaultConfigName+")")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with FLOWPAINT_* overrides")
	cmd.PersistentFlags().StringP("output-dir", "o", "", "directory the images are written to (must exist)")
	cmd.PersistentFlags().Float64("dpi", defaultDPI, "pixels per canvas unit")
	cmd.PersistentFlags().Float64("padding", defaultPadding, "margin around the content, in canvas units")
	cmd.PersistentFlags().String("log-level", "info", "none, trace, debug, info, warn or error")

	cfg := func() *Config { return config }
	cmd.AddCommand(listCommand(), renderCommand(cfg), browseCommand(cfg))
	return cmd
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"output-dir": "output_dir",
		"dpi":        "dpi",
		"padding":    "padding",
		"log-level":  "log_level",
		"parallel":   "parallel",
		"copy":       "copy_path",
		"yes":        "confirmations",
	} {
		f := flags.Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		value := f.Value.String()
		if flag == "output-dir" {
			value = expandPath(value)
		}
		if flag == "yes" {
			// --yes turns confirmations off
			value = fmt.Sprint(value != "true")
		}
		if err := cfg.set(key, value); err != nil {
			return fmt.Errorf("--%s: %w", flag, err)
		}
	}
	return cfg.validate()
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the diagrams that can be rendered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeCatalog(cmd.OutOrStdout(), diagrams.Catalog())
			return nil
		},
	}
}

func writeCatalog(w io.Writer, defs []diagrams.Definition) {
	name := lipgloss.NewStyle().Bold(true).Width(12)
	output := lipgloss.NewStyle().Faint(true)
	for _, d := range defs {
		fmt.Fprintf(w, "%s%s %s\n", name.Render(d.Name), d.Description, output.Render("("+d.Output+")"))
	}
}

func renderCommand(config func() *Config) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "render [diagram...]",
		Short: "Render diagrams to PNG files",
		Long:  "Render the named diagrams, or every diagram with --all. Names are listed by 'flowpaint list'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			defs, err := selectDiagrams(args, all)
			if err != nil {
				return err
			}
			paths, err := cfg.exportAll(cmd.Context(), defs)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if cfg.CopyPath && len(paths) > 0 {
				if err := copyToClipboard(strings.Join(paths, "\n")); err != nil {
					log.Warn().Err(err).Msg("could not copy output path")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "render every diagram")
	cmd.Flags().Bool("parallel", false, "render diagrams concurrently")
	cmd.Flags().Bool("copy", false, "copy the output path to the clipboard")
	return cmd
}

func selectDiagrams(names []string, all bool) ([]diagrams.Definition, error) {
	if all {
		if len(names) > 0 {
			return nil, fmt.Errorf("--all does not take diagram names")
		}
		return diagrams.Catalog(), nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name at least one diagram or pass --all (known: %s)", strings.Join(diagrams.Names(), ", "))
	}
	defs := make([]diagrams.Definition, 0, len(names))
	for _, name := range names {
		d, err := diagrams.Lookup(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func browseCommand(config func() *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick diagrams to render in an interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// log lines would tear the alternate screen; results go to the status line
			log.Logger = log.Output(io.Discard)
			p := tea.NewProgram(
				initialModel(config()),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			if err != nil && err != tea.ErrProgramKilled {
				return err
			}
			return nil
		},
	}
	cmd.Flags().Bool("copy", false, "copy each output path to the clipboard")
	cmd.Flags().Bool("yes", false, "overwrite existing images without asking")
	return cmd
}
