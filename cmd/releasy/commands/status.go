package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewStatusCommand creates the status command group. Probes are
// unauthenticated, so these commands work without credentials.
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check service status",
		Long:  "Query the Releasy service health, liveness, and readiness probes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusCommand()
		},
	}

	cmd.AddCommand(newStatusProbeCommand("health", "Check overall service health",
		func(ctx context.Context, client releasy.Client) (*releasy.HealthResponse, error) {
			return client.Health(ctx)
		}))
	cmd.AddCommand(newStatusProbeCommand("live", "Check the liveness probe",
		func(ctx context.Context, client releasy.Client) (*releasy.HealthResponse, error) {
			return client.Live(ctx)
		}))
	cmd.AddCommand(newStatusProbeCommand("ready", "Check the readiness probe",
		func(ctx context.Context, client releasy.Client) (*releasy.HealthResponse, error) {
			return client.Ready(ctx)
		}))
	cmd.AddCommand(newStatusOpenAPICommand())

	return cmd
}

func runStatusCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	type probeResult struct {
		Probe  string `json:"probe"  yaml:"probe"`
		Status string `json:"status" yaml:"status"`
	}

	probes := []struct {
		name string
		call func(context.Context) (*releasy.HealthResponse, error)
	}{
		{"health", client.Health},
		{"live", client.Live},
		{"ready", client.Ready},
	}

	results := make([]probeResult, 0, len(probes))

	for _, probe := range probes {
		health, err := probe.call(ctx)
		if err != nil {
			results = append(results, probeResult{Probe: probe.name, Status: fmt.Sprintf("error: %v", err)})

			continue
		}

		results = append(results, probeResult{Probe: probe.name, Status: health.Status})
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(results)
	case OutputFormatYAML:
		return StandardYAMLRenderer(results)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Probe", "Status")

		for _, result := range results {
			_ = table.Append(result.Probe, result.Status)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newStatusProbeCommand(use, short string, call func(context.Context, releasy.Client) (*releasy.HealthResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			health, err := call(context.Background(), client)
			if err != nil {
				return fmt.Errorf("checking %s: %w", use, err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(health)
			case OutputFormatYAML:
				return StandardYAMLRenderer(health)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", use, health.Status)
			}

			return nil
		},
	}
}

func newStatusOpenAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Fetch the OpenAPI document",
		Long:  "Fetch the service's OpenAPI document as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			document, err := client.OpenAPI(context.Background())
			if err != nil {
				return fmt.Errorf("fetching openapi document: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(document)
			}

			return StandardJSONRenderer(document)
		},
	}
}
