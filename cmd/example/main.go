package main

import (
	"context"
	"fmt"
	"os"
	"time"

	namaste "github.com/fhirfly/namaste-sdk"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

// Run `go run ./cmd/sandbox` first, then point NAMASTE_BASE_URL at it and set
// NAMASTE_API_TOKEN=sandbox-token.
func main() {
	fmt.Printf("Version: %s\n", Version)
	fmt.Printf("Tag: %s\n", Tag)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := namaste.NewFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Close()

	if err := sampleUsage(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sampleUsage(ctx context.Context, client *namaste.Client) error {
	result, err := client.TranslateDiagnosis(ctx, "NAM123")
	if err != nil {
		return err
	}
	fmt.Println("Mapping Result:", result)

	response, err := client.UploadBundle(ctx, namaste.SampleBundle())
	if err != nil {
		return err
	}
	fmt.Println("Upload Response:", response)

	patient, err := client.GetPatientByID(ctx, "P001")
	if err != nil {
		return err
	}
	fmt.Println("Patient:", patient)

	diagnoses, err := client.ListDiagnoses(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Diagnoses:")
	for _, diagnosis := range diagnoses {
		fmt.Println("  -", diagnosis)
	}
	return nil
}
