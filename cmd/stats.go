package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/skadvisory/findna/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archetype distribution and completion counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		started, completed, err := repo.CompletionCounts(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Runs:      %d started, %d completed\n", started, completed)

		counts, err := repo.ArchetypeCounts(ctx)
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			fmt.Println("No profiles recorded yet.")
			return nil
		}

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if counts[names[i]] != counts[names[j]] {
				return counts[names[i]] > counts[names[j]]
			}
			return names[i] < names[j]
		})

		fmt.Println("\nArchetypes:")
		for _, name := range names {
			fmt.Printf("  %-12s %d\n", name, counts[name])
		}
		return nil
	},
}
