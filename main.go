// koopa runs a side-scrolling platformer level.
//
// Usage:
//
//	koopa [--level 1-1] [--variant underground] [--sprites dir] [--watch] [--debug]
//	koopa levels       - List embedded levels
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/koopa/assets"
	"github.com/milk9111/koopa/levels"
	"github.com/spf13/cobra"
)

var (
	flagDebug       bool
	flagLevel       string
	flagWorld       string
	flagVariant     string
	flagSprites     string
	flagWatch       bool
	flagBaseMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "koopa",
	Short: "Run a platformer level",
	Long: `koopa loads a level and runs it in a window.

Controls:
  Left/Right, A/D  - Move
  Space, Up, W     - Jump
  Esc              - Pause`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range levels.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&flagLevel, "level", "1-1", "level name in levels/ (.json optional)")
	rootCmd.Flags().StringVar(&flagWorld, "world", "", "world constants file (default world.yaml)")
	rootCmd.Flags().StringVar(&flagVariant, "variant", "", "sprite variant: "+fmt.Sprint(assets.Variants))
	rootCmd.Flags().StringVar(&flagSprites, "sprites", "", "directory of sprite sheets to use instead of the embedded ones")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the level when a prefab in ./prefabs changes")
	rootCmd.Flags().BoolVarP(&flagBaseMonitor, "base-monitor", "m", false, "use the first monitor instead of the primary one")

	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "koopa",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runGame(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	if _, ok := assets.VariantRow(flagVariant); flagVariant != "" && !ok {
		return fmt.Errorf("unknown variant %q", flagVariant)
	}

	var sprites fs.FS = assets.Embedded()
	if flagSprites != "" {
		sprites = os.DirFS(flagSprites)
	}
	provider, err := assets.NewSheetProvider(sprites)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}

	game, err := NewGame(GameOptions{
		Level:     flagLevel,
		WorldFile: flagWorld,
		Variant:   flagVariant,
		Watch:     flagWatch,
		Provider:  provider,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	if flagBaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("koopa " + game.session.HUD().World)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
