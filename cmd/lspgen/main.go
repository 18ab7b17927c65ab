package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/lspgen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "lspgen",
		Short: "Generate protocol types from an LSP meta-model",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var singleTarget string
	var input string
	var outDir string
	var namespace string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate declaration and binding artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath:   configPath,
				SingleTarget: singleTarget,
				Fallback: cli.FallbackParams{
					Spec:      input,
					OutDir:    outDir,
					Namespace: namespace,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to lspgen.yaml config")
	cmd.Flags().StringVar(&singleTarget, "target", "", "Generate only the named target from config")
	// Fallback single-target flags
	cmd.Flags().StringVar(&input, "input", "", "Meta-model file (metaModel.json)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace wrapping the generated declarations")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a meta-model document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Meta-model file (metaModel.json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
