package cmd

import (
	"fmt"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/schema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd prints the JSON schema of masonry.yml.
func NewSchemaCmd() *cobra.Command {
	var embedded bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for dashboard files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if embedded {
				fmt.Fprintln(cmd.OutOrStdout(), string(schema.Raw()))
				return nil
			}
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&embedded, "embedded", false, "Print the schema used for validation instead of the generated one")
	return cmd
}
