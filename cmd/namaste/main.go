package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	namaste "github.com/fhirfly/namaste-sdk"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	baseURL string
	token   string
	timeout time.Duration
}

func main() {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "namaste",
		Short:         "Command line client for the NAMASTE terminology API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "API base URL (default from NAMASTE_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", "", "bearer token (default from NAMASTE_API_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 30*time.Second, "overall command timeout")

	rootCmd.AddCommand(translateCmd(flags))
	rootCmd.AddCommand(searchCmd(flags))
	rootCmd.AddCommand(uploadCmd(flags))
	rootCmd.AddCommand(bundleCmd(flags))
	rootCmd.AddCommand(patientCmd(flags))
	rootCmd.AddCommand(diagnosesCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withClient builds a client and runs fn under the command timeout. Explicit
// flags bypass the environment configuration.
func withClient(flags *globalFlags, fn func(ctx context.Context, client *namaste.Client) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	var client *namaste.Client
	var err error
	if flags.baseURL != "" || flags.token != "" {
		baseURL := flags.baseURL
		if baseURL == "" {
			baseURL = os.Getenv("NAMASTE_BASE_URL")
		}
		opts := []namaste.Option{namaste.WithTimeout(flags.timeout)}
		if flags.token != "" {
			opts = append(opts, namaste.WithToken(flags.token))
		}
		client, err = namaste.New(baseURL, opts...)
	} else {
		client, err = namaste.NewFromEnv(ctx)
	}
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(ctx, client)
}

func translateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "translate CODE [CODE...]",
		Short: "Translate NAMASTE codes to ICD-11",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				for _, code := range args {
					result, err := client.TranslateDiagnosis(ctx, code)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), result)
				}
				return nil
			})
		},
	}
}

func searchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search NAMASTE terms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				results, err := client.SearchTerminology(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				for _, result := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", result.NamasteCode, result.ICD11Code, result.TermName, result.Description)
				}
				return nil
			})
		},
	}
}

func uploadCmd(flags *globalFlags) *cobra.Command {
	var bundleID, patientName string
	var diagnosisArgs []string
	var sample bool

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a bundle of diagnoses",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := buildBundle(sample, bundleID, patientName, diagnosisArgs)
			if err != nil {
				return err
			}
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				response, err := client.UploadBundle(ctx, bundle)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), response)
				if !response.Success() {
					return fmt.Errorf("upload rejected: %s", response.Message())
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&bundleID, "id", "", "bundle id")
	cmd.Flags().StringVar(&patientName, "patient", "", "patient name")
	cmd.Flags().StringArrayVar(&diagnosisArgs, "diagnosis", nil, "diagnosis as CODE or CODE:DESCRIPTION, repeatable")
	cmd.Flags().BoolVar(&sample, "sample", false, "upload the sample bundle")
	return cmd
}

func buildBundle(sample bool, bundleID, patientName string, diagnosisArgs []string) (namaste.Bundle, error) {
	if sample {
		return namaste.SampleBundle(), nil
	}

	diagnoses := make([]namaste.Diagnosis, 0, len(diagnosisArgs))
	for _, arg := range diagnosisArgs {
		code, description, _ := strings.Cut(arg, ":")
		diagnosis, err := namaste.NewDiagnosis(strings.TrimSpace(code), strings.TrimSpace(description))
		if err != nil {
			return namaste.Bundle{}, fmt.Errorf("invalid diagnosis %q: %w", arg, err)
		}
		diagnoses = append(diagnoses, diagnosis)
	}

	bundle, err := namaste.NewBundle(bundleID, patientName, diagnoses...)
	if err != nil {
		return namaste.Bundle{}, fmt.Errorf("invalid bundle, --id and --patient are required: %w", err)
	}
	return bundle, nil
}

func bundleCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bundle ID",
		Short: "Fetch an uploaded bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				bundle, err := client.GetBundle(ctx, args[0])
				if err != nil {
					return err
				}
				printBundle(cmd, bundle)
				return nil
			})
		},
	}
}

func patientCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "patient ID",
		Short: "Fetch a patient's bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				patient, err := client.GetPatientByID(ctx, args[0])
				if err != nil {
					return err
				}
				printBundle(cmd, patient)
				return nil
			})
		},
	}
}

func diagnosesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnoses",
		Short: "List known diagnoses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(ctx context.Context, client *namaste.Client) error {
				diagnoses, err := client.ListDiagnoses(ctx)
				if err != nil {
					return err
				}
				for _, diagnosis := range diagnoses {
					fmt.Fprintln(cmd.OutOrStdout(), diagnosis)
				}
				return nil
			})
		},
	}
}

func printBundle(cmd *cobra.Command, bundle *namaste.Bundle) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bundle)
	for _, diagnosis := range bundle.Diagnoses() {
		fmt.Fprintln(out, "  -", diagnosis)
	}
}
