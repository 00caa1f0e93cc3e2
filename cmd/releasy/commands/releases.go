package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/releasy-io/releasy-go/internal/constants"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// NewReleasesCommand creates the releases command group.
func NewReleasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "releases",
		Aliases: []string{"release"},
		Short:   "Manage releases and artifacts",
		Long:    "List, create, publish, and delete releases, and upload release artifacts",
	}

	cmd.AddCommand(newReleasesListCommand())
	cmd.AddCommand(newReleasesCreateCommand())
	cmd.AddCommand(newReleasesDeleteCommand())
	cmd.AddCommand(newReleasesPublishCommand())
	cmd.AddCommand(newReleasesUnpublishCommand())
	cmd.AddCommand(newReleasesUploadCommand())

	return cmd
}

func newReleasesListCommand() *cobra.Command {
	var (
		product          string
		version          string
		status           string
		includeArtifacts bool
		limit            int32
		offset           int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List releases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			query := &releasy.ReleaseListQuery{
				Limit:  releasy.Int32(limit),
				Offset: releasy.Int32(offset),
			}
			if product != "" {
				query.Product = releasy.String(product)
			}

			if version != "" {
				query.Version = releasy.String(version)
			}

			if status != "" {
				query.Status = releasy.String(status)
			}

			if includeArtifacts {
				query.IncludeArtifacts = releasy.Bool(true)
			}

			result, err := client.Releases().List(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to list releases: %w", err)
			}

			return outputReleaseList(result)
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "filter by product")
	cmd.Flags().StringVar(&version, "version", "", "filter by version")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&includeArtifacts, "artifacts", false, "include artifact details")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int32Var(&offset, "offset", 0, "page offset")

	return cmd
}

func outputReleaseList(result *releasy.ReleaseListResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Releases) == 0 {
			_, _ = os.Stdout.WriteString("No releases found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Product", "Version", "Status", "Artifacts", "Created", "Published")

		for _, release := range result.Releases {
			_ = table.Append(release.ID, release.Product, release.Version, release.Status,
				fmt.Sprintf("%d", len(release.Artifacts)),
				formatUnix(release.CreatedAt),
				formatUnixPtr(release.PublishedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newReleasesCreateCommand() *cobra.Command {
	var (
		product string
		version string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft release",
		RunE: func(cmd *cobra.Command, args []string) error {
			if product == "" {
				return ErrProductRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			release, err := client.Releases().Create(context.Background(), &releasy.ReleaseCreateRequest{
				Product: product,
				Version: version,
			})
			if err != nil {
				return fmt.Errorf("failed to create release: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created draft release '%s' (%s %s)\n", release.ID, release.Product, release.Version)

			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "product identifier (required)")
	cmd.Flags().StringVar(&version, "version", "", "release version (required)")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newReleasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete RELEASE_ID",
		Short: "Delete a release",
		Long:  "Delete a release. Published releases must be unpublished first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete release '%s'? (y/N): ", args[0])

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

			err = client.Releases().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete release: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted release '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newReleasesPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish RELEASE_ID",
		Short: "Publish a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			release, err := client.Releases().Publish(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to publish release: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Published release '%s' (%s %s)\n", release.ID, release.Product, release.Version)

			return nil
		},
	}
}

func newReleasesUnpublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish RELEASE_ID",
		Short: "Unpublish a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			release, err := client.Releases().Unpublish(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to unpublish release: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unpublished release '%s' (%s %s)\n", release.ID, release.Product, release.Version)

			return nil
		},
	}
}

func newReleasesUploadCommand() *cobra.Command {
	var (
		file     string
		platform string
	)

	cmd := &cobra.Command{
		Use:   "upload RELEASE_ID",
		Short: "Upload an artifact to a release",
		Long: `Upload an artifact to a release.

Runs the full three-step flow: request a presigned upload URL, PUT the
file's raw bytes to object storage, then register the artifact on the
release with its checksum and size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return ErrArtifactFileRequired
			}

			client, err := CreateAuthenticatedClient()
			if err != nil {
				return err
			}

			return runArtifactUpload(client, args[0], file, platform)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "artifact file to upload (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "target platform, e.g. linux-amd64")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runArtifactUpload(client releasy.Client, releaseID, file, platform string) error {
	checksum, size, err := fileDigest(file)
	if err != nil {
		return err
	}

	ctx := context.Background()

	presign, err := client.Releases().PresignArtifactUpload(ctx, releaseID, &releasy.ArtifactPresignRequest{
		Filename: filepath.Base(file),
		Platform: platform,
	})
	if err != nil {
		return fmt.Errorf("failed to presign upload: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Uploading %s (%d bytes)...\n", filepath.Base(file), size)

	err = client.Releases().UploadPresignedArtifact(ctx, presign.UploadURL, file)
	if err != nil {
		return fmt.Errorf("failed to upload artifact: %w", err)
	}

	artifact, err := client.Releases().RegisterArtifact(ctx, releaseID, &releasy.ArtifactRegisterRequest{
		ArtifactID: presign.ArtifactID,
		ObjectKey:  presign.ObjectKey,
		Checksum:   checksum,
		Size:       size,
		Platform:   platform,
	})
	if err != nil {
		return fmt.Errorf("failed to register artifact: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Registered artifact '%s' on release '%s'\n", artifact.ID, artifact.ReleaseID)

	return nil
}

// fileDigest returns the sha256 checksum and byte size of a file.
func fileDigest(path string) (string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening artifact file: %w", err)
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()

	size, err := io.Copy(hash, file)
	if err != nil {
		return "", 0, fmt.Errorf("hashing artifact file: %w", err)
	}

	return "sha256:" + hex.EncodeToString(hash.Sum(nil)), size, nil
}
