// Command newspanel turns the day's news headlines into an illustrated
// studio-panel image prompt, and optionally into the image itself.
//
// Usage:
//
//	newspanel build             Build the prompt and print it
//	newspanel render            Build the prompt and generate the image
//	newspanel runs              List archived runs
//	newspanel tui               Interactive headline review
package main

import (
	"fmt"
	"os"
)

const usage = `newspanel — illustrated news panel prompts

Usage:
  newspanel <command> [flags]

Commands:
  build       Fetch headlines and print the assembled image prompt
  render      Build the prompt and generate the image (requires an API key)
  runs        List archived runs
  tui         Interactive review: toggle headlines, preview, render

Environment:
  GROK_API_KEY / XAI_API_KEY   xAI image generation key
  OPENAI_API_KEY               OpenAI image generation key

Run 'newspanel <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "build":
		runBuild()
	case "render":
		runRender()
	case "runs":
		runRuns()
	case "tui":
		runTUI()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "newspanel: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
