// Command pokecard resolves Pokémon names and prints their cards.
//
//	pokecard [--json] [--config path] [-v] <name>...
//
// Records are cached in the configured backend (a local SQLite file by
// default), so repeated lookups work offline.
//
// Exit codes: 0 = every name resolved, 1 = a lookup, usage or configuration error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokecard/internal/app"
	"github.com/heartmarshall/pokecard/internal/config"
	"github.com/heartmarshall/pokecard/internal/domain"
	"github.com/heartmarshall/pokecard/internal/render"
)

const (
	flagJSON    = "json"
	flagConfig  = "config"
	flagVerbose = "verbose"
)

// errLookupsFailed is returned after all names were tried and at least one failed.
var errLookupsFailed = errors.New("one or more lookups failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokecard <name>...",
		Short: "Look up Pokémon cards by name",
		Long: `Resolves each name against the catalog, caching raw records so that repeated
lookups (in any letter case) are served locally, and prints one card per name.`,
		Args:              cobra.MinimumNArgs(1),
		RunE:              runLookup,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.Flags().Bool(flagJSON, false, "print cards as JSON")
	cmd.Flags().String(flagConfig, "", "config file (default $CONFIG_PATH or ./config.yaml)")
	cmd.Flags().BoolP(flagVerbose, "v", false, "log at debug level")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool(flagJSON)
	if err != nil {
		return err
	}
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool(flagVerbose)
	if err != nil {
		return err
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}

	cfg.Log.Level = "warn"
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)

	ctx := cmd.Context()
	comps, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer comps.Close()

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	failed := false
	for _, name := range args {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		card, err := comps.Resolver.ResolveCard(ctx, name)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, domain.UserMessage(err))
			failed = true
			continue
		}

		if asJSON {
			err = enc.Encode(card)
		} else {
			err = render.Card(out, card)
		}
		if err != nil {
			return fmt.Errorf("write card: %w", err)
		}
	}

	if failed {
		return errLookupsFailed
	}
	return nil
}
