package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/schemas"
)

var schemaCommand = &cobra.Command{
	Use:   "schema",
	Short: "Print or apply the pipeline run JSON Schema",
	Long: `Prints the JSON Schema generated from the pipeline run type, or writes it with --out.

With --validate, validates a persisted run JSON file against the checked-in schema instead.`,
	RunE: runSchemaCmd,
}

var (
	schemaOut      string
	schemaValidate string
)

func init() {
	schemaCommand.Flags().StringVar(&schemaOut, "out", "", "Path to write the generated schema to (default stdout)")
	schemaCommand.Flags().StringVar(&schemaValidate, "validate", "", "Path to a run JSON file to validate against schemas/pipeline_run.schema.json")

	rootCmd.AddCommand(schemaCommand)
}

func runSchemaCmd(_ *cobra.Command, _ []string) error {
	if schemaValidate != "" {
		return validateRunFile(schemaValidate)
	}

	schema, err := schemas.GenerateRunSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if schemaOut != "" {
		if err := os.WriteFile(schemaOut, append(schema, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write schema: %w", err)
		}
		fmt.Printf("Schema written to: %s\n", schemaOut)
		return nil
	}

	fmt.Println(string(schema))
	return nil
}

func validateRunFile(path string) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/pipeline_run.schema.json")

	err := schemas.ValidateJSON(schemaPath, path)
	if err == nil {
		fmt.Printf("%s conforms to the pipeline run schema\n", path)
		return nil
	}

	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf("could not load schema or document: %w", err)
	}

	var valErr *schemas.ValidationError
	if errors.As(err, &valErr) {
		fmt.Fprintf(os.Stderr, "%s does not conform to the pipeline run schema:\n", path)
		for _, fe := range valErr.Errors {
			fmt.Fprintf(os.Stderr, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed with %d errors", len(valErr.Errors))
	}

	return err
}
