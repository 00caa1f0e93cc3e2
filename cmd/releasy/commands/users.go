package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/internal/constants"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, create, update users, manage their groups, and reset credentials",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersUpdateCommand())
	cmd.AddCommand(newUsersSetGroupsCommand())
	cmd.AddCommand(newUsersResetCredentialsCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		customerID string
		email      string
		status     string
		limit      int32
		cursor     string
		allPages   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List users with optional filters; pagination is cursor based",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			query := &releasy.UserListQuery{Limit: releasy.Int32(limit)}
			if customerID != "" {
				query.CustomerID = releasy.String(customerID)
			}

			if email != "" {
				query.Email = releasy.String(email)
			}

			if status != "" {
				query.Status = releasy.String(status)
			}

			if cursor != "" {
				query.Cursor = releasy.String(cursor)
			}

			ctx := context.Background()

			result, err := client.Users().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			allUsers := result.Users
			nextCursor := result.NextCursor

			for allPages && nextCursor != nil {
				query.Cursor = nextCursor

				page, err := client.Users().List(ctx, query)
				if err != nil {
					return fmt.Errorf("failed to fetch next user page: %w", err)
				}

				allUsers = append(allUsers, page.Users...)
				nextCursor = page.NextCursor
			}

			return outputUserList(allUsers, nextCursor, allPages)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "filter by customer ID")
	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func outputUserList(users []releasy.User, nextCursor *string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		return renderUserTable(users, nextCursor, allPages)
	}
}

func renderUserTable(users []releasy.User, nextCursor *string, allPages bool) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Customer", "Status", "Groups", "Created")

	for _, user := range users {
		_ = table.Append(user.ID, user.Email, user.CustomerID, user.Status,
			strings.Join(user.Groups, ","), formatUnix(user.CreatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if !allPages && nextCursor != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore results available. Use --cursor %s or --all.\n", *nextCursor)
	}

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Long:  "Display detailed information about a specific user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUserDetails(user)
		},
	}
}

func outputUserDetails(user *releasy.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", user.ID)
		_ = table.Append("Email", user.Email)
		_ = table.Append("Customer", user.CustomerID)
		_ = table.Append("Keycloak ID", user.KeycloakUserID)
		_ = table.Append("Status", user.Status)
		_ = table.Append("Display Name", formatStringPtr(user.DisplayName))
		_ = table.Append("Groups", strings.Join(user.Groups, ","))
		_ = table.Append("Created", formatUnix(user.CreatedAt))
		_ = table.Append("Updated", formatUnix(user.UpdatedAt))
		_ = table.Append("Disabled", formatUnixPtr(user.DisabledAt))
		_ = table.Append("Last Synced", formatUnixPtr(user.LastSyncedAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		email          string
		customerID     string
		displayName    string
		groups         []string
		metadata       string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a new user under a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return ErrEmailRequired
			}

			if customerID == "" {
				return ErrCustomerRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			rawMetadata, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &releasy.UserCreateRequest{
				Email:      email,
				CustomerID: customerID,
				Groups:     groups,
				Metadata:   rawMetadata,
			}
			if displayName != "" {
				request.DisplayName = releasy.String(displayName)
			}

			ctx := context.Background()

			var user *releasy.User
			if idempotencyKey != "" {
				user, err = client.Users().CreateWithIdempotencyKey(ctx, request, idempotencyKey)
			} else {
				user, err = client.Users().Create(ctx, request)
			}

			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created user '%s' with ID %s\n", user.Email, user.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "user email (required)")
	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID (required)")
	cmd.Flags().StringVar(&displayName, "display-name", "", "display name")
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "initial group membership")
	cmd.Flags().StringVar(&metadata, "metadata", "", "opaque metadata as a JSON string")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "dedupe token for safe retries")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

func newUsersUpdateCommand() *cobra.Command {
	var (
		displayName string
		status      string
		metadata    string
	)

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a user",
		Long:  "Patch a user's display name, status, or metadata; unset flags leave fields untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.UserUpdateRequest{}
			if cmd.Flags().Changed("display-name") {
				request.DisplayName = releasy.String(displayName)
			}

			if cmd.Flags().Changed("status") {
				request.Status = releasy.String(status)
			}

			if cmd.Flags().Changed("metadata") {
				rawMetadata, err := parseMetadata(metadata)
				if err != nil {
					return err
				}

				request.Metadata = rawMetadata
			}

			user, err := client.Users().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated user '%s'\n", user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "new display name")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&metadata, "metadata", "", "opaque metadata as a JSON string")

	return cmd
}

func newUsersSetGroupsCommand() *cobra.Command {
	var groups []string

	cmd := &cobra.Command{
		Use:   "set-groups USER_ID",
		Short: "Replace a user's groups",
		Long:  "Replace the user's full group membership with the given set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			user, err := client.Users().ReplaceGroups(context.Background(), args[0],
				&releasy.UserGroupsReplaceRequest{Groups: groups})
			if err != nil {
				return fmt.Errorf("failed to replace user groups: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Groups for '%s' are now: %s\n", user.Email, strings.Join(user.Groups, ","))

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&groups, "groups", nil, "full group membership (replaces existing)")

	return cmd
}

func newUsersResetCredentialsCommand() *cobra.Command {
	var sendEmail bool

	cmd := &cobra.Command{
		Use:   "reset-credentials USER_ID",
		Short: "Trigger a credential reset",
		Long:  "Ask the identity provider to reset the user's credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.ResetCredentialsRequest{}
			if cmd.Flags().Changed("send-email") {
				request.SendEmail = releasy.Bool(sendEmail)
			}

			err = client.Users().ResetCredentials(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to reset credentials: %w", err)
			}

			_, _ = os.Stdout.WriteString("Credential reset accepted\n")

			return nil
		},
	}

	cmd.Flags().BoolVar(&sendEmail, "send-email", true, "send a reset email to the user")

	return cmd
}
