package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewDownloadsCommand creates the downloads command group.
func NewDownloadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "downloads",
		Aliases: []string{"download"},
		Short:   "Issue and resolve download tokens",
		Long:    "Issue short-lived artifact download tokens and resolve them to object locations",
	}

	cmd.AddCommand(newDownloadsTokenCommand())
	cmd.AddCommand(newDownloadsResolveCommand())

	return cmd
}

func newDownloadsTokenCommand() *cobra.Command {
	var (
		artifactID string
		expiresIn  int32
		purpose    string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a download token",
		Long:  "Issue a short-lived download token for an artifact (requires --api-key)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			request := &releasy.DownloadTokenRequest{ArtifactID: artifactID}
			if cmd.Flags().Changed("expires-in") {
				request.ExpiresInSeconds = releasy.Int32(expiresIn)
			}

			if purpose != "" {
				request.Purpose = releasy.String(purpose)
			}

			token, err := client.Downloads().CreateToken(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create download token: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(token)
			case OutputFormatYAML:
				return StandardYAMLRenderer(token)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", token.DownloadURL)
				_, _ = fmt.Fprintf(os.Stdout, "Expires: %s\n", formatUnix(token.ExpiresAt))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&artifactID, "artifact", "", "artifact ID (required)")
	cmd.Flags().Int32Var(&expiresIn, "expires-in", 0, "token lifetime in seconds")
	cmd.Flags().StringVar(&purpose, "purpose", "", "free-form purpose recorded with the token")
	_ = cmd.MarkFlagRequired("artifact")

	return cmd
}

func newDownloadsResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TOKEN",
		Short: "Resolve a download token",
		Long:  "Resolve a download token to the final object location without downloading the bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resolution, err := client.Downloads().Resolve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve download token: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(resolution)
			case OutputFormatYAML:
				return StandardYAMLRenderer(resolution)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", resolution.Location)
			}

			return nil
		},
	}
}
