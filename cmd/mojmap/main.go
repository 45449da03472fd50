package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/craftmap/mojmap/core/cli"
	"github.com/craftmap/mojmap/core/source"
	"github.com/craftmap/mojmap/core/view"
	mojangdriver "github.com/craftmap/mojmap/drivers/mojang"
	"github.com/craftmap/mojmap/pkg/proguard"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := mojangdriver.NewDriver()

	runVersions := func(ctx context.Context, opts cli.VersionsOptions) error {
		versions, err := provider.ListVersions(ctx)
		if err != nil {
			return err
		}

		if !opts.All {
			versions = source.Releases(versions)
		}
		if opts.Limit > 0 && len(versions) > opts.Limit {
			versions = versions[:opts.Limit]
		}

		for _, v := range versions {
			if opts.All {
				fmt.Printf("%-14s %s\n", v.ID, v.Type)
			} else {
				fmt.Println(v.ID)
			}
		}
		return nil
	}

	runConvert := func(ctx context.Context, opts cli.ConvertOptions) error {
		versionID := opts.Version

		switch {
		case opts.Latest:
			latest, err := provider.LatestRelease(ctx)
			if err != nil {
				return err
			}
			versionID = latest.ID
			log.WithField("version", versionID).Info("selected newest release")

		case versionID == "":
			versions, err := provider.ListVersions(ctx)
			if err != nil {
				return err
			}
			picked, ok, err := view.PickRelease(source.Releases(versions))
			if err != nil {
				return err
			}
			if !ok {
				log.Info("no version selected")
				return nil
			}
			versionID = picked
		}

		text, err := provider.FetchMappings(ctx, versionID)
		if err != nil {
			return fmt.Errorf("fetching mappings for %s: %w", versionID, err)
		}

		table := proguard.Parse(text)
		log.WithFields(log.Fields{
			"version": versionID,
			"classes": table.Len(),
		}).Info("converted mappings")

		out, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", opts.Output, err)
		}

		switch opts.Format {
		case cli.FormatYAML:
			err = table.EncodeYAML(out)
		default:
			err = table.EncodeJSON(out)
		}
		if err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", opts.Output, err)
		}

		log.WithFields(log.Fields{
			"path":    opts.Output,
			"format":  opts.Format,
			"version": versionID,
		}).Info("wrote mapping table")
		return nil
	}

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewVersionsCmd(runVersions))
	root.AddCommand(cli.NewConvertCmd(runConvert))

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
