package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledrew1407/report-generator/layout"
	"github.com/ledrew1407/report-generator/report"
	"github.com/ledrew1407/report-generator/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reportd",
		Short: "Serve the inspection report form and PDF generator",
		RunE:  runServer,
	}

	flags := rootCmd.Flags()
	flags.String("addr", ":7000", "address to listen on")
	flags.String("company", "", "company name stamped on every page")
	flags.String("logo", "company_logo.png", "path to the company logo image")
	flags.String("font", "Roboto-Regular.ttf", "path to a UTF-8 TTF body font")
	flags.String("letterhead", "", "path to a single-page letterhead PDF")

	_ = viper.BindPFlag("addr", flags.Lookup("addr"))
	_ = viper.BindPFlag("company", flags.Lookup("company"))
	_ = viper.BindPFlag("logo", flags.Lookup("logo"))
	_ = viper.BindPFlag("font", flags.Lookup("font"))
	_ = viper.BindPFlag("letterhead", flags.Lookup("letterhead"))

	viper.SetEnvPrefix("REPORTD")
	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	assets := layout.LoadAssets(logger,
		viper.GetString("logo"),
		viper.GetString("font"),
		viper.GetString("letterhead"),
	)

	opts := []layout.Option{layout.WithAssets(assets)}
	if company := viper.GetString("company"); company != "" {
		opts = append(opts, layout.WithCompanyName(company))
	}

	gen := report.NewGenerator(layout.NewEngine(opts...), assets)

	srv := server.New(logger, gen, server.Config{
		Addr:            viper.GetString("addr"),
		ShutdownTimeout: 10 * time.Second,
	})

	logger.Info().Str("addr", viper.GetString("addr")).Msg("starting report server")
	return srv.Start()
}
