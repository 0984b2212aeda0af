package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/grimoire-api/internal/api/spellbook/v1alpha1"
)

var suggestLimit int

var getSpellCmd = &cobra.Command{
	Use:   "get-spell <name>",
	Short: "Look up one spell by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.GetSpell(ctx, &apiv1alpha1.GetSpellRequest{Name: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Println(resp.Card.Text())
			return nil
		})
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest spell names",
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.SuggestSpells(ctx, &apiv1alpha1.SuggestSpellsRequest{
				Query: strings.Join(args, " "),
				Limit: suggestLimit,
			})
			if err != nil {
				return err
			}
			for _, choice := range resp.Choices {
				fmt.Println(choice.Name)
			}
			return nil
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search spells",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.SearchSpells(ctx, &apiv1alpha1.SearchSpellsRequest{Term: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			printList(resp)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list <filter>",
	Short: "List spells by element, category, or all",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.ListSpells(ctx, &apiv1alpha1.ListSpellsRequest{Filter: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			printList(resp)
			return nil
		})
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random spell",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.RandomSpell(ctx, &apiv1alpha1.RandomSpellRequest{})
			if err != nil {
				return err
			}
			fmt.Println(resp.Card.Text())
			return nil
		})
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the server's dataset",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.ReloadSpellbook(ctx, &apiv1alpha1.ReloadSpellbookRequest{})
			if err != nil {
				return err
			}
			fmt.Printf("Loaded %d spells from %s (version %s at %s)\n",
				resp.Count, resp.Source, resp.Version, resp.LoadedAt.Format(time.RFC3339))
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spell counts per element",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *apiv1alpha1.Client) error {
			resp, err := c.GetStats(ctx, &apiv1alpha1.GetStatsRequest{})
			if err != nil {
				return err
			}
			fmt.Printf("%d spells, version %s, source %s\n", resp.Count, resp.Version, resp.Source)

			elements := make([]string, 0, len(resp.ByElement))
			for el := range resp.ByElement {
				elements = append(elements, el)
			}
			sort.Strings(elements)
			for _, el := range elements {
				fmt.Printf("  %-12s %d\n", el, resp.ByElement[el])
			}
			return nil
		})
	},
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 25, "Maximum number of suggestions")
}

func withClient(fn func(context.Context, *apiv1alpha1.Client) error) error {
	c, cleanup, err := createSpellbookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, c)
}

func printList(resp *apiv1alpha1.SpellListResponse) {
	fmt.Printf("Results (%d)\n", resp.Total)
	if resp.Total == 0 {
		fmt.Println("Nothing found.")
		return
	}
	fmt.Println(resp.Listing)
}
