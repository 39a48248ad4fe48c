// statutes is the batch CLI for the statute browsing data pipeline:
//
//	statutes prepare-tags --config pipeline.yaml
//	statutes prepare-effects --config pipeline.yaml
//	statutes check [statutes_data.json]
//	statutes match-effect "some generated label"
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
