// Package namaste is a client for the NAMASTE terminology API. It translates
// NAMASTE diagnosis codes to ICD-11, uploads clinical bundles and reads
// patient and diagnosis records.
//
// A Client is safe for concurrent use:
//
//	client, err := namaste.New("https://api.example.org", namaste.WithToken(token))
//	if err != nil {
//		return err
//	}
//	result, err := client.TranslateDiagnosis(ctx, "NAM123")
package namaste
