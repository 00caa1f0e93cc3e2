package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/internal/constants"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewAuditEventsCommand creates the audit events command group.
func NewAuditEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audit-events",
		Aliases: []string{"audit"},
		Short:   "Browse the admin audit trail",
		Long:    "List recorded admin actions with optional filters",
	}

	cmd.AddCommand(newAuditEventsListCommand())

	return cmd
}

func newAuditEventsListCommand() *cobra.Command {
	var (
		customerID  string
		actor       string
		event       string
		createdFrom int64
		createdTo   int64
		limit       int32
		offset      int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			query := &releasy.AuditEventListQuery{
				Limit:  releasy.Int32(limit),
				Offset: releasy.Int32(offset),
			}
			if customerID != "" {
				query.CustomerID = releasy.String(customerID)
			}

			if actor != "" {
				query.Actor = releasy.String(actor)
			}

			if event != "" {
				query.Event = releasy.String(event)
			}

			if cmd.Flags().Changed("from") {
				query.CreatedFrom = releasy.Int64(createdFrom)
			}

			if cmd.Flags().Changed("to") {
				query.CreatedTo = releasy.Int64(createdTo)
			}

			result, err := client.AuditEvents().List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to list audit events: %w", err)
			}

			return outputAuditEventList(result)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "filter by customer ID")
	cmd.Flags().StringVar(&actor, "actor", "", "filter by actor")
	cmd.Flags().StringVar(&event, "event", "", "filter by event type")
	cmd.Flags().Int64Var(&createdFrom, "from", 0, "earliest event time as a unix timestamp")
	cmd.Flags().Int64Var(&createdTo, "to", 0, "latest event time as a unix timestamp")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int32Var(&offset, "offset", 0, "page offset")

	return cmd
}

func outputAuditEventList(result *releasy.AuditEventListResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Events) == 0 {
			_, _ = os.Stdout.WriteString("No audit events found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Event", "Actor", "Customer", "Created")

		for _, auditEvent := range result.Events {
			_ = table.Append(auditEvent.ID, auditEvent.Event, auditEvent.Actor,
				formatStringPtr(auditEvent.CustomerID), formatUnix(auditEvent.CreatedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
