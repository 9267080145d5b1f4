package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"attribute-browser/internal/catalog"
	"attribute-browser/internal/loader"
	"attribute-browser/internal/models"
)

var (
	queryText   string
	queryEffect string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the attributes matching a search as JSON",
	Example: `  attrbrowser query --q fire
  attrbrowser query --effect debuff --data https://example.com/custom_attributes.json`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryText, "q", "", "free-text query")
	queryCmd.Flags().StringVar(&queryEffect, "effect", models.EffectAll, "effect type filter")
}

func runQuery(cmd *cobra.Command, args []string) error {
	c, err := loader.New(cfg.FetchTimeout, logger).LoadCatalog(cmd.Context(), cfg.DataSource)
	if err != nil {
		return err
	}

	result := c.Search(catalog.Query{Text: queryText, Effect: queryEffect})
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(models.AttributeListResponse{Count: result.Count, Items: result.Records})
}
