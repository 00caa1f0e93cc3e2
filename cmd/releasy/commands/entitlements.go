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

// NewEntitlementsCommand creates the entitlements command group.
func NewEntitlementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entitlements",
		Aliases: []string{"entitlement"},
		Short:   "Manage customer entitlements",
		Long:    "List, grant, update, and revoke product entitlements for a customer",
	}

	cmd.AddCommand(newEntitlementsListCommand())
	cmd.AddCommand(newEntitlementsGrantCommand())
	cmd.AddCommand(newEntitlementsUpdateCommand())
	cmd.AddCommand(newEntitlementsRevokeCommand())

	return cmd
}

func newEntitlementsListCommand() *cobra.Command {
	var (
		customerID string
		product    string
		limit      int32
		offset     int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a customer's entitlements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			query := &releasy.EntitlementListQuery{
				Limit:  releasy.Int32(limit),
				Offset: releasy.Int32(offset),
			}
			if product != "" {
				query.Product = releasy.String(product)
			}

			result, err := client.Entitlements().List(context.Background(), customerID, query)
			if err != nil {
				return fmt.Errorf("failed to list entitlements: %w", err)
			}

			return outputEntitlementList(result)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&product, "product", "", "filter by product")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int32Var(&offset, "offset", 0, "page offset")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

func outputEntitlementList(result *releasy.EntitlementListResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Entitlements) == 0 {
			_, _ = os.Stdout.WriteString("No entitlements found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Product", "Starts", "Ends")

		for _, entitlement := range result.Entitlements {
			_ = table.Append(entitlement.ID, entitlement.Product,
				formatUnix(entitlement.StartsAt), formatUnixPtr(entitlement.EndsAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newEntitlementsGrantCommand() *cobra.Command {
	var (
		customerID string
		product    string
		startsAt   int64
		endsAt     int64
		metadata   string
	)

	cmd := &cobra.Command{
		Use:     "grant",
		Aliases: []string{"create"},
		Short:   "Grant an entitlement",
		Long:    "Grant a product entitlement to a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerRequired
			}

			if product == "" {
				return ErrProductRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			rawMetadata, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &releasy.EntitlementCreateRequest{
				Product:  product,
				StartsAt: startsAt,
				Metadata: rawMetadata,
			}
			if cmd.Flags().Changed("ends-at") {
				request.EndsAt = releasy.Int64(endsAt)
			}

			entitlement, err := client.Entitlements().Create(context.Background(), customerID, request)
			if err != nil {
				return fmt.Errorf("failed to grant entitlement: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Granted entitlement '%s' for product '%s'\n", entitlement.ID, entitlement.Product)

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&product, "product", "", "product identifier (required)")
	cmd.Flags().Int64Var(&startsAt, "starts-at", 0, "start time as a unix timestamp")
	cmd.Flags().Int64Var(&endsAt, "ends-at", 0, "end time as a unix timestamp (omit for perpetual)")
	cmd.Flags().StringVar(&metadata, "metadata", "", "opaque metadata as a JSON string")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newEntitlementsUpdateCommand() *cobra.Command {
	var (
		customerID string
		product    string
		startsAt   int64
		endsAt     int64
		metadata   string
	)

	cmd := &cobra.Command{
		Use:   "update ENTITLEMENT_ID",
		Short: "Update an entitlement",
		Long:  "Patch an entitlement's product, window, or metadata; unset flags leave fields untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.EntitlementUpdateRequest{}
			if cmd.Flags().Changed("product") {
				request.Product = releasy.String(product)
			}

			if cmd.Flags().Changed("starts-at") {
				request.StartsAt = releasy.Int64(startsAt)
			}

			if cmd.Flags().Changed("ends-at") {
				request.EndsAt = releasy.Int64(endsAt)
			}

			if cmd.Flags().Changed("metadata") {
				rawMetadata, err := parseMetadata(metadata)
				if err != nil {
					return err
				}

				request.Metadata = rawMetadata
			}

			entitlement, err := client.Entitlements().Update(context.Background(), customerID, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update entitlement: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated entitlement '%s'\n", entitlement.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&product, "product", "", "new product identifier")
	cmd.Flags().Int64Var(&startsAt, "starts-at", 0, "new start time as a unix timestamp")
	cmd.Flags().Int64Var(&endsAt, "ends-at", 0, "new end time as a unix timestamp")
	cmd.Flags().StringVar(&metadata, "metadata", "", "opaque metadata as a JSON string")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

func newEntitlementsRevokeCommand() *cobra.Command {
	var (
		customerID string
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "revoke ENTITLEMENT_ID",
		Aliases: []string{"delete"},
		Short:   "Revoke an entitlement",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerRequired
			}

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really revoke entitlement '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			err = client.Entitlements().Delete(context.Background(), customerID, args[0])
			if err != nil {
				return fmt.Errorf("failed to revoke entitlement: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully revoked entitlement '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}
