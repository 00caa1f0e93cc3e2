package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the releasy CLI configuration stored in ~/.releasy/config.yml",
	}

	cmd.AddCommand(newConfigSetAPICommand())
	cmd.AddCommand(newConfigSetAdminKeyCommand())
	cmd.AddCommand(newConfigSetAPIKeyCommand())
	cmd.AddCommand(newConfigSetJWTCommand())
	cmd.AddCommand(newConfigViewCommand())

	return cmd
}

func newConfigSetAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api URL",
		Short: "Set the API endpoint",
		Long:  "Set the Releasy API endpoint URL used by all commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api", args[0])

			if err := persistConfig(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "API endpoint set to %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetAdminKeyCommand() *cobra.Command {
	return newSecretSetCommand("set-admin-key", "admin key", "admin-key")
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return newSecretSetCommand("set-api-key", "API key", "api-key")
}

func newConfigSetJWTCommand() *cobra.Command {
	return newSecretSetCommand("set-jwt", "operator JWT", "jwt")
}

// newSecretSetCommand builds a command that stores a credential. The value is
// taken from the argument when given, otherwise prompted without echo.
func newSecretSetCommand(use, display, key string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [VALUE]",
		Short: "Set the " + display,
		Long:  "Set the " + display + ". Omit the value to be prompted without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string

			if len(args) == 1 {
				value = args[0]
			} else {
				fmt.Printf("%s: ", display)

				byteValue, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", display, err)
				}

				value = string(byteValue)

				fmt.Println()
			}

			viper.Set(key, value)

			if err := persistConfig(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s saved\n", display)

			return nil
		},
	}
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View current configuration",
		Long:  "Display the effective configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]string{
				"api":       viper.GetString("api"),
				"admin-key": maskSecret(viper.GetString("admin-key")),
				"api-key":   maskSecret(viper.GetString("api-key")),
				"jwt":       maskSecret(viper.GetString("jwt")),
				"output":    viper.GetString("output"),
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(settings)
			case OutputFormatYAML:
				return StandardYAMLRenderer(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")

				for _, key := range []string{"api", "admin-key", "api-key", "jwt", "output"} {
					_ = table.Append(key, settings[key])
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	return Masked
}

func persistConfig() error {
	if err := viper.WriteConfig(); err != nil {
		// First write: the config file does not exist yet.
		if err := viper.SafeWriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	return nil
}
