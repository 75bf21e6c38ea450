package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/storage"
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Show or reset the saved chicken",
	Long: `Inspect the chicken saved by the designer.

Examples:
  pecktopia character show
  pecktopia character reset
  pecktopia character show --owner alice   # a chicken saved over SSH`,
}

var characterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved chicken",
	Args:  cobra.NoArgs,
	Run:   runCharacterShow,
}

var characterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved chicken",
	Args:  cobra.NoArgs,
	Run:   runCharacterReset,
}

func init() {
	characterCmd.AddCommand(characterShowCmd)
	characterCmd.AddCommand(characterResetCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runCharacterShow(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	c, ok, err := store.LoadCharacter(flagOwner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading character: %v\n", err)
		return
	}
	if !ok {
		fmt.Printf("No chicken saved for %q yet; the default one will be used.\n", flagOwner)
		c = core.DefaultCharacter()
	}

	fmt.Printf("Chicken of %s\n", flagOwner)
	fmt.Println()
	fmt.Printf("  %-13s %s\n", "Color Scheme", core.ColorSchemeName(c.ColorScheme))
	fmt.Printf("  %-13s %s\n", "Pattern", core.PatternName(c.Pattern))
	fmt.Printf("  %-13s %d/%d\n", "Temperament", c.Temperament, core.MaxTemperament)
	fmt.Printf("  %-13s %s\n", "Accessory", core.AccessoryName(c.Accessory))
	fmt.Printf("  %-13s %s\n", "Wing Style", core.WingStyleName(c.WingStyle))
	fmt.Printf("  %-13s %s\n", "Eye Type", core.EyeTypeName(c.EyeType))
	fmt.Println()
	fmt.Println(c.Mood())
}

func runCharacterReset(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeleteCharacter(flagOwner); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting character: %v\n", err)
		return
	}
	fmt.Printf("Chicken of %s reset to the default.\n", flagOwner)
}
