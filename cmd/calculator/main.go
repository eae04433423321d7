// Command calculator is a keypad calculator for the terminal, a one-shot
// expression evaluator, and an HTTP server for calculator sessions.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/server"
)

var rootCmd = &cobra.Command{
	Use:   "calculator",
	Short: "Keypad calculator",
	Long: `Keypad calculator. Each line of input is a sequence of keystrokes, mapped
to calculator keys through the keymap. Digits, ".", "+", "-", "*", "/", "^",
"(", ")", and "=" are themselves; "!" is div, "@" is mod, "#" squares, "$" is
the square root, "%" rounds, "<" is backspace, "c" clears, and "C" clears the
history too.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runREPL,
}

var evalCmd = &cobra.Command{
	Use:   "eval [expr...]",
	Short: "Evaluate expressions and print the results",
	RunE:  runEval,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for calculator sessions",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file with places and key bindings (env CALCULATOR_KEYMAP)")
	rootCmd.PersistentFlags().Int("places", calculator.DefaultPlaces, "decimal places of results, negative for no rounding (env CALCULATOR_PLACES)")
	rootCmd.Flags().Bool("auto-eval", false, "evaluate at the end of every line")

	evalCmd.Flags().String("in", "", "input file (default stdin if no args given)")
	evalCmd.Flags().BoolP("lines", "n", false, "parse separate input lines as separate expressions")
	evalCmd.Flags().Bool("echo", false, "print parse trees")

	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8080, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")

	rootCmd.AddCommand(evalCmd, serveCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// setup loads the config and resolves the evaluation options. The --places
// flag wins over CALCULATOR_PLACES, which wins over the config file.
func setup(cmd *cobra.Command) (*Config, []calculator.ContextOption, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CALCULATOR_KEYMAP")
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	places := calculator.DefaultPlaces
	if cfg.Places != nil {
		places = *cfg.Places
	}
	if v := os.Getenv("CALCULATOR_PLACES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("CALCULATOR_PLACES: %w", err)
		}
		places = n
	}
	if cmd.Flags().Changed("places") {
		places, _ = cmd.Flags().GetInt("places")
	}
	return cfg, []calculator.ContextOption{calculator.Places(places)}, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, opts, err := setup(cmd)
	if err != nil {
		return err
	}
	keys, err := cfg.Keymap()
	if err != nil {
		return err
	}
	autoEval, _ := cmd.Flags().GetBool("auto-eval")
	calc := calculator.New(opts...)
	return repl(cmd.InOrStdin(), cmd.OutOrStdout(), calc, keys, autoEval)
}

func runServe(cmd *cobra.Command, args []string) error {
	_, opts, err := setup(cmd)
	if err != nil {
		return err
	}

	port := envOrDefault("PORT", "8080")
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = fmt.Sprintf("%d", v)
	}

	host := envOrDefault("HOST", "0.0.0.0")
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	srv := server.New(opts...)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down calculator server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	if err := srv.Listen(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
