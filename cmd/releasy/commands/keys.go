package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewKeysCommand creates the API keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key"},
		Short:   "Manage API keys",
		Long:    "Mint, revoke, and introspect customer API keys",
	}

	cmd.AddCommand(newKeysCreateCommand())
	cmd.AddCommand(newKeysRevokeCommand())
	cmd.AddCommand(newKeysIntrospectCommand())

	return cmd
}

func newKeysCreateCommand() *cobra.Command {
	var (
		customerID string
		name       string
		keyType    string
		scopes     []string
		expiresAt  int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Mint an API key",
		Long:  "Mint a new API key for a customer. The secret is printed once and never again.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return ErrCustomerRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.APIKeyCreateRequest{
				CustomerID: customerID,
				Scopes:     scopes,
			}
			if name != "" {
				request.Name = releasy.String(name)
			}

			if keyType != "" {
				request.KeyType = releasy.String(keyType)
			}

			if cmd.Flags().Changed("expires-at") {
				request.ExpiresAt = releasy.Int64(expiresAt)
			}

			created, err := client.Keys().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create api key: %w", err)
			}

			return outputCreatedKey(created)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "key display name")
	cmd.Flags().StringVar(&keyType, "type", "", "key type")
	cmd.Flags().StringSliceVar(&scopes, "scopes", nil, "scopes granted to the key")
	cmd.Flags().Int64Var(&expiresAt, "expires-at", 0, "expiry as a unix timestamp")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

func outputCreatedKey(created *releasy.APIKeyCreateResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(created)
	case OutputFormatYAML:
		return StandardYAMLRenderer(created)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Key ID", created.APIKeyID)
		_ = table.Append("Secret", created.APIKey)
		_ = table.Append("Customer", created.CustomerID)
		_ = table.Append("Type", created.KeyType)
		_ = table.Append("Scopes", strings.Join(created.Scopes, ","))
		_ = table.Append("Expires", formatUnixPtr(created.ExpiresAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		_, _ = os.Stdout.WriteString("\nStore the secret now: it cannot be retrieved again.\n")

		return nil
	}
}

func newKeysRevokeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "revoke KEY_ID",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really revoke API key '%s'? (y/N): ", args[0])

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

			revoked, err := client.Keys().Revoke(context.Background(),
				&releasy.APIKeyRevokeRequest{APIKeyID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to revoke api key: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully revoked API key '%s'\n", revoked.APIKeyID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newKeysIntrospectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "introspect",
		Short: "Introspect the calling API key",
		Long:  "Describe the API key used to authenticate this call (requires --api-key)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			introspection, err := client.Keys().Introspect(context.Background())
			if err != nil {
				return fmt.Errorf("failed to introspect api key: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(introspection)
			case OutputFormatYAML:
				return StandardYAMLRenderer(introspection)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Active", fmt.Sprintf("%t", introspection.Active))
				_ = table.Append("Key ID", introspection.APIKeyID)
				_ = table.Append("Customer", introspection.CustomerID)
				_ = table.Append("Type", introspection.KeyType)
				_ = table.Append("Scopes", strings.Join(introspection.Scopes, ","))
				_ = table.Append("Expires", formatUnixPtr(introspection.ExpiresAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
