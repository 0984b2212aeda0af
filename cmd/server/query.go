package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/internal/handlers/card"
	"github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook"
)

var suggestLimit int

var spellCmd = &cobra.Command{
	Use:   "spell <name>",
	Short: "Show one spell from the configured dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLoadedSpellbook(cmd.Context(), func(ctx context.Context, svc spellbook.Service) error {
			out, err := svc.GetSpell(ctx, &spellbook.GetSpellInput{Name: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Println(card.FromSpell(out.Spell).Text())
			return nil
		})
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest spell names containing the query",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLoadedSpellbook(cmd.Context(), func(ctx context.Context, svc spellbook.Service) error {
			limit := cfg.Query.SuggestLimit
			if cmd.Flags().Changed("limit") {
				limit = suggestLimit
			}
			out, err := svc.SuggestSpells(ctx, &spellbook.SuggestSpellsInput{
				Query: strings.Join(args, " "),
				Limit: limit,
			})
			if err != nil {
				return err
			}
			for _, choice := range card.Choices(out.Names) {
				fmt.Println(choice.Name)
			}
			return nil
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search spells by name, element, category or description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLoadedSpellbook(cmd.Context(), func(ctx context.Context, svc spellbook.Service) error {
			term := strings.Join(args, " ")
			out, err := svc.SearchSpells(ctx, &spellbook.SearchSpellsInput{Term: term})
			if err != nil {
				return err
			}
			printListing(fmt.Sprintf("Search results for %q", term), card.Names(out.Spells))
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list <filter>",
	Short: "List spells by element, category, or all",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLoadedSpellbook(cmd.Context(), func(ctx context.Context, svc spellbook.Service) error {
			filter := strings.Join(args, " ")
			out, err := svc.ListSpells(ctx, &spellbook.ListSpellsInput{Filter: filter})
			if err != nil {
				return err
			}
			printListing(fmt.Sprintf("List %q", filter), card.Names(out.Spells))
			return nil
		})
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random spell",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withLoadedSpellbook(cmd.Context(), func(ctx context.Context, svc spellbook.Service) error {
			out, err := svc.RandomSpell(ctx, &spellbook.RandomSpellInput{})
			if err != nil {
				return err
			}
			fmt.Println(card.FromSpell(out.Spell).Text())
			return nil
		})
	},
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", spellbook.MaxSuggestions, "Maximum number of suggestions")
}

// withLoadedSpellbook builds the spellbook, loads the dataset and runs fn against it
func withLoadedSpellbook(ctx context.Context, fn func(context.Context, spellbook.Service) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, cleanup, err := newSpellbook()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.Reload(ctx, &spellbook.ReloadInput{}); err != nil {
		return err
	}
	return fn(ctx, svc)
}

func printListing(title string, names []string) {
	fmt.Printf("%s (%d)\n", title, len(names))
	if len(names) == 0 {
		fmt.Println("Nothing found.")
		return
	}
	fmt.Println(card.ResultList(names))
}
