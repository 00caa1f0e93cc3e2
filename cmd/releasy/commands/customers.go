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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, create, update, suspend, and reactivate customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersSuspendCommand())
	cmd.AddCommand(newCustomersActivateCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		name   string
		plan   string
		limit  int32
		offset int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by name or plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			query := &releasy.CustomerListQuery{
				Limit:  releasy.Int32(limit),
				Offset: releasy.Int32(offset),
			}
			if name != "" {
				query.Name = releasy.String(name)
			}

			if plan != "" {
				query.Plan = releasy.String(plan)
			}

			result, err := client.Customers().List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return outputCustomerList(result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by customer name")
	cmd.Flags().StringVar(&plan, "plan", "", "filter by plan")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int32Var(&offset, "offset", 0, "page offset")

	return cmd
}

func outputCustomerList(result *releasy.CustomerListResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		return renderCustomerTable(result.Customers)
	}
}

func renderCustomerTable(customers []releasy.Customer) error {
	if len(customers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Plan", "Created", "Suspended")

	for _, customer := range customers {
		_ = table.Append(customer.ID, customer.Name,
			formatStringPtr(customer.Plan),
			formatUnix(customer.CreatedAt),
			formatUnixPtr(customer.SuspendedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputCustomerDetails(customer)
		},
	}
}

func outputCustomerDetails(customer *releasy.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(customer)
	case OutputFormatYAML:
		return StandardYAMLRenderer(customer)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", customer.ID)
		_ = table.Append("Name", customer.Name)
		_ = table.Append("Plan", formatStringPtr(customer.Plan))
		_ = table.Append("Created", formatUnix(customer.CreatedAt))
		_ = table.Append("Suspended", formatUnixPtr(customer.SuspendedAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name           string
		plan           string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer, optionally with a plan and an idempotency key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.CustomerCreateRequest{Name: name}
			if plan != "" {
				request.Plan = releasy.String(plan)
			}

			ctx := context.Background()

			var created *releasy.CustomerCreateResponse
			if idempotencyKey != "" {
				created, err = client.Customers().CreateWithIdempotencyKey(ctx, request, idempotencyKey)
			} else {
				created, err = client.Customers().Create(ctx, request)
			}

			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created customer '%s' with ID %s\n", created.Name, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "customer name (required)")
	cmd.Flags().StringVar(&plan, "plan", "", "customer plan")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "dedupe token for safe retries")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var (
		name string
		plan string
	)

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Patch a customer's name or plan; unset flags leave fields untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.CustomerUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = releasy.String(name)
			}

			if cmd.Flags().Changed("plan") {
				request.Plan = releasy.String(plan)
			}

			customer, err := client.Customers().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated customer '%s'\n", customer.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new customer name")
	cmd.Flags().StringVar(&plan, "plan", "", "new customer plan")

	return cmd
}

func newCustomersSuspendCommand() *cobra.Command {
	return newCustomerSuspensionCommand("suspend", "Suspend a customer", true,
		"Suspended customer '%s'\n")
}

func newCustomersActivateCommand() *cobra.Command {
	return newCustomerSuspensionCommand("activate", "Reactivate a suspended customer", false,
		"Reactivated customer '%s'\n")
}

func newCustomerSuspensionCommand(use, short string, suspended bool, successMessage string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " CUSTOMER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Update(context.Background(), args[0],
				&releasy.CustomerUpdateRequest{Suspended: releasy.Bool(suspended)})
			if err != nil {
				return fmt.Errorf("failed to %s customer: %w", use, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, successMessage, customer.Name)

			return nil
		},
	}
}
