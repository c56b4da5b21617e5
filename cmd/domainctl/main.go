package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.devnw.com/alog"

	"github.com/odanielmeinicke/domains"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	err := configLogger(ctx, "domainctl")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = root.ExecuteContext(ctx)
	if err != nil {
		fmt.Println(err)
		// nolint:gocritic
		os.Exit(1)
	}
}

func parseExec(_ *cobra.Command, args []string) {
	failed := false
	for _, raw := range args {
		d, err := domains.Parse(raw)
		if err != nil {
			alog.Errorf(err, "parse failed")
			failed = true

			continue
		}

		rendered := d.String()
		if p := viper.GetString("parse.port"); p != "" {
			port, err := domains.ParsePort(p)
			if err != nil {
				alog.Errorf(err, "bad port flag")
				failed = true

				continue
			}

			rendered = d.StringWithPort(port)
		}

		fmt.Printf("%s\n", rendered)
		fmt.Printf("  subdomains: %v\n", d.Subdomains())
		fmt.Printf("  sld:        %s\n", d.SLD())

		if tld := d.TLD(); tld != nil {
			fmt.Printf(
				"  tld:        %s (%s)\n",
				tld, tld.Type,
			)
		} else {
			fmt.Printf("  tld:        <absent; local>\n")
		}

		if viper.GetBool("verbose") {
			spew.Dump(d)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func validateExec(_ *cobra.Command, args []string) {
	failed := false
	for _, raw := range args {
		if !domains.Valid(raw) {
			fmt.Printf("invalid  %s\n", raw)
			failed = true

			continue
		}

		fmt.Printf("valid    %s\n", raw)
	}

	if failed {
		os.Exit(1)
	}
}

func tldExec(_ *cobra.Command, args []string) {
	failed := false
	for _, code := range args {
		if !domains.ValidTLDSyntax(code) {
			fmt.Printf("%s: fails tld syntax\n", code)
			failed = true

			continue
		}

		entry, err := domains.LookupTLD(code)
		if err != nil {
			alog.Errorf(err, "lookup failed")
			failed = true

			continue
		}

		fmt.Printf("%s\n", entry)
		fmt.Printf("  type:         %s\n", entry.Type)

		if entry.Provider != "" {
			fmt.Printf("  provider:     %s\n", entry.Provider)
		}

		if !entry.RegisteredOn.IsZero() {
			fmt.Printf(
				"  registered:   %s\n",
				entry.RegisteredOn.Format("2006-01-02"),
			)
		}

		fmt.Printf(
			"  last updated: %s\n",
			entry.LastUpdatedOn.Format("2006-01-02"),
		)

		if viper.GetBool("verbose") {
			spew.Dump(entry)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func configLogger(ctx context.Context, prefix string) error {
	return alog.Global(
		ctx,
		prefix,
		alog.DEFAULTTIMEFORMAT,
		time.UTC,
		0,
		[]alog.Destination{
			{
				Types:  alog.INFO | alog.DEBUG,
				Format: alog.JSON,
				Writer: os.Stdout,
			},
			{
				Types:  alog.ERROR | alog.CRIT | alog.FATAL,
				Format: alog.JSON,
				Writer: os.Stderr,
			},
		}...,
	)
}
