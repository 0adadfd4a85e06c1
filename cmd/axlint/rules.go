package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"axlint/internal/diag"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the accessibility rules and their codes",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type rulePayload struct {
	Code      string `json:"code"`
	Rule      string `json:"rule"`
	Title     string `json:"title"`
	Guideline string `json:"guideline,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	codes := diag.RuleCodes()
	switch format {
	case "pretty":
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, code := range codes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", code.ID(), code.Slug(), code.Title(), code.Guideline())
		}
		return w.Flush()
	case "json":
		payload := make([]rulePayload, 0, len(codes))
		for _, code := range codes {
			payload = append(payload, rulePayload{
				Code:      code.ID(),
				Rule:      code.Slug(),
				Title:     code.Title(),
				Guideline: code.Guideline(),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
