package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/profile"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Classify a JSON answer map without running the quiz",
	Long: `Classify an answer map offline and print the resulting profile.

This is a stateless developer tool — no database, no events, no submission.
Useful for checking how a given set of answers classifies.

The input file is a flat JSON object of answerKey to answer text, e.g.
{"investHistory": "The Trader", "boat": "The Sandwich"}.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("answers", "", "Path to a JSON answer map (required)")
	_ = previewCmd.MarkFlagRequired("answers")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("answers")

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parse answers: %w", err)
	}

	set := answers.NewSet()
	for k, v := range m {
		set.Put(k, answers.Text(v))
	}

	p := profile.Classify(set)
	card := profile.Content(p.Archetype)

	fmt.Printf("Archetype:        %s %s\n", card.Emoji, p.Archetype)
	if p.SituationalOverride != "" {
		fmt.Printf("Override:         %s\n", p.SituationalOverride)
	}
	fmt.Printf("Risk appetite:    %s (%d)\n", p.RiskAppetite, p.RiskScore)
	fmt.Printf("Structure:        %s (%d)\n", p.Structure, p.StructureScore)
	fmt.Printf("Emotional driver: %s\n", p.EmotionalDriver)
	fmt.Printf("Narrative:        %s\n", p.NarrativeKey)
	fmt.Printf("Cognitive gap:    %s\n", p.CognitiveGap)
	fmt.Printf("Fragility:        %s\n", p.Fragility)
	fmt.Printf("Pivot:            %s\n", p.PivotKey)
	fmt.Printf("Origin:           %s\n", p.OriginKey)
	return nil
}
