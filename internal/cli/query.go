package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/config"
)

var baseURL string

func init() {
	health := &cobra.Command{
		Use:   "health",
		Short: "Check a running API instance",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := newClient().HealthCheck(cmd.Context())
			if err != nil {
				exitErr("health", err)
			}
			printResult(os.Stdout, resp, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", resp.Service, resp.Status)
			})
		},
	}

	styles := &cobra.Command{
		Use:   "styles",
		Short: "List styles offered by a running API instance",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := newClient().GetStyles(cmd.Context())
			if err != nil {
				exitErr("styles", err)
			}
			printResult(os.Stdout, resp, func(w io.Writer) {
				for _, s := range resp.Styles {
					fmt.Fprintf(w, "%-16s %s\n", s.ID, s.Description)
				}
			})
		},
	}

	generate := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Request a screenshot from a running API instance",
		Args:  cobra.ExactArgs(1),
		Run:   runGenerate,
	}
	generate.Flags().String("style", "", "Style id")
	generate.Flags().Int("width", 0, "Image width")
	generate.Flags().Int("height", 0, "Image height")

	for _, cmd := range []*cobra.Command{health, styles, generate} {
		cmd.Flags().StringVarP(&baseURL, "url", "u", config.DevelopmentAPIURL, "API base URL")
		RootCmd.AddCommand(cmd)
	}
}

func runGenerate(cmd *cobra.Command, args []string) {
	style, _ := cmd.Flags().GetString("style")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	resp, err := newClient().GenerateImage(cmd.Context(), api.GenerateRequest{
		Prompt: args[0],
		Style:  style,
		Width:  width,
		Height: height,
	})
	if err != nil {
		exitErr("generate", err)
	}
	printResult(os.Stdout, resp, func(w io.Writer) {
		fmt.Fprintln(w, resp.Message)
		if resp.ImageURL != "" {
			fmt.Fprintln(w, resp.ImageURL)
		}
	})
}

func newClient() *api.Client {
	return api.NewClient(config.APIConfig{BaseURL: baseURL, Timeout: config.DefaultAPITimeout})
}

// printResult writes v as indented JSON, or through text when --format=text
func printResult(w io.Writer, v any, text func(io.Writer)) {
	if formatFlag == "text" {
		text(w)
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}
