package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/74587/srec-dash/internal/cli/picker"
	"github.com/74587/srec-dash/internal/cli/styles"
	"github.com/74587/srec-dash/internal/colorscheme"
	"github.com/74587/srec-dash/internal/config"
	"github.com/74587/srec-dash/internal/logging"
	"github.com/74587/srec-dash/internal/storage"
	"github.com/74587/srec-dash/internal/theme"
	themestore "github.com/74587/srec-dash/internal/theme/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the dashboard theme",
}

var themeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current mode, resolved mode and preset",
	RunE:  runThemeStatus,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark|system>",
	Short:     "Set the theme mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE:      runThemeSet,
}

var themePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets",
	RunE:  runThemePresets,
}

var themePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a preset interactively",
	RunE:  runThemePick,
}

func init() {
	themeCmd.AddCommand(themeStatusCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themePresetsCmd)
	themeCmd.AddCommand(themePickCmd)
}

// newCLIStore builds a store over the shared state file, so CLI
// changes are observed by a running serve process via its watcher.
func newCLIStore(cmd *cobra.Command) (*themestore.Store, error) {
	cfg := cfgManager.Get()

	statePath := cfg.StateFile
	if statePath == "" {
		var err error
		statePath, err = config.GetStateFile()
		if err != nil {
			return nil, err
		}
	}

	resolver := colorscheme.NewSystemResolver()
	pref := resolver.Resolve()

	ctx := logging.WithContext(cmd.Context(), logging.NewFromEnv())
	return themestore.New(ctx, themestore.Options{
		Storage:    storage.New(statePath),
		SystemDark: pref.PrefersDark,
		Settings:   cfg.Theme,
	}), nil
}

func runThemeStatus(cmd *cobra.Command, _ []string) error {
	ts, err := newCLIStore(cmd)
	if err != nil {
		return err
	}

	th := styles.NewTheme(cfgManager.Get().Theme)
	fmt.Println(th.Title.Render("Theme"))
	fmt.Printf("  mode      %s\n", th.Highlight.Render(string(ts.Mode())))
	fmt.Printf("  resolved  %s\n", th.Highlight.Render(string(ts.ResolvedMode())))
	fmt.Printf("  preset    %s\n", th.Subtle.Render(cfgManager.Get().Theme.Preset))
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	mode, ok := theme.ParseMode(args[0])
	if !ok {
		return fmt.Errorf("unknown mode %q (want light, dark or system)", args[0])
	}

	ts, err := newCLIStore(cmd)
	if err != nil {
		return err
	}

	ctx := logging.WithContext(cmd.Context(), logging.NewFromEnv())
	if err := ts.SetMode(ctx, mode); err != nil {
		return err
	}
	ts.RefreshVarsCache(ctx)

	th := styles.NewTheme(cfgManager.Get().Theme)
	fmt.Printf("mode set to %s (resolved %s)\n",
		th.Highlight.Render(string(mode)),
		th.Subtle.Render(string(ts.ResolvedMode())))
	return nil
}

func runThemePresets(_ *cobra.Command, _ []string) error {
	cfg := cfgManager.Get()
	th := styles.NewTheme(cfg.Theme)

	fmt.Println(th.Title.Render("Presets"))
	for _, name := range theme.PresetNames() {
		p := theme.PresetByName(name)
		marker := "  "
		if name == cfg.Theme.Preset {
			marker = th.Highlight.Render("* ")
		}
		fmt.Printf("%s%s\t%s\n", marker, name, th.Subtle.Render(p.Description))
	}
	return nil
}

func runThemePick(_ *cobra.Command, _ []string) error {
	cfg := cfgManager.Get()
	th := styles.NewTheme(cfg.Theme)

	model := picker.New(cfg.Theme.Preset, th)
	result, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	final, ok := result.(picker.Model)
	if !ok || final.Chosen == "" || final.Chosen == cfg.Theme.Preset {
		return nil
	}

	cfg.Theme.Preset = final.Chosen
	if err := cfgManager.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("preset set to %s\n", th.Highlight.Render(final.Chosen))
	return nil
}
