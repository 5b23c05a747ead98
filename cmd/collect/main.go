package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"monks.co/collection"
	"monks.co/collection/config"
	"monks.co/collection/load"
	"monks.co/collection/logger"
	"monks.co/collection/render"
)

func main() {
	ctx := NewSigctx()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("collect", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configArg := flags.String("config", "", "config file; searches the default locations if unset")
	tableArg := flags.String("table", "", "read entries from this (dotted) table instead of the top level")
	formatArg := flags.String("format", "", "output format: json, text or html")
	sortArg := flags.String("sort", "", "sort values: asc or desc")
	reverseArg := flags.Bool("reverse", false, "reverse the entries")
	prefixArg := flags.String("prefix", "", "keep only keys with this prefix")
	excludeArg := flags.String("exclude", "", "drop keys present in this file")
	onlyArg := flags.String("only", "", "keep only keys present in this file")
	firstArg := flags.Int("first", 0, "keep only the first n entries")
	titleArg := flags.String("title", "collection", "caption for html output")
	diffArg := flags.String("diff", "", "print how the entries differ from this file instead")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := loadConfig(*configArg)
	if err != nil {
		return err
	}
	if *formatArg != "" {
		conf.Output.Format = *formatArg
	}
	if *sortArg != "" {
		conf.Sort.Order = *sortArg
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	var log logger.Logger
	if conf.Log.File != "" {
		fileLog, closer := logger.NewFile(conf.Log.Label, conf.Log.File, conf.Log.MaxSizeMB)
		defer closer.Close()
		log = fileLog
	} else {
		log = logger.NewWriter(conf.Log.Label, stderr)
	}

	paths := flags.Args()
	if len(paths) == 0 {
		return fmt.Errorf("must specify at least one file")
	}

	opts := []collection.Option{collection.WithLogger(log)}
	c, err := load.Files(ctx, paths, *tableArg, opts...)
	if err != nil {
		return err
	}
	defer c.Destroy()
	log.Printf("loaded %s from %d files", c, len(paths))

	if *prefixArg != "" {
		c = c.Filter(func(_ any, k string) bool {
			return strings.HasPrefix(k, *prefixArg)
		})
	}
	if *excludeArg != "" {
		other, err := load.File(*excludeArg, *tableArg, opts...)
		if err != nil {
			return err
		}
		c = c.Difference(other)
	}
	if *onlyArg != "" {
		other, err := load.File(*onlyArg, *tableArg, opts...)
		if err != nil {
			return err
		}
		c = c.Intersect(other)
	}
	switch conf.Sort.Order {
	case "asc":
		c = c.Sort(compareValues)
	case "desc":
		c = c.Sort(func(a, b any) int { return compareValues(b, a) })
	}
	if *reverseArg {
		c = c.Reverse()
	}
	if *firstArg > 0 {
		seen := 0
		c.Sweep(func(any, string) bool {
			seen++
			return seen > *firstArg
		})
	}

	if *diffArg != "" {
		other, err := load.File(*diffArg, *tableArg, opts...)
		if err != nil {
			return err
		}
		return render.DiffFunc(stdout, "", c, other, func(a, b any) bool {
			return reflect.DeepEqual(a, b)
		})
	}

	switch conf.Output.Format {
	case "json":
		return render.JSON(stdout, c)
	case "text":
		return render.Text(stdout, c)
	case "html":
		return render.HTML(ctx, stdout, *titleArg, c)
	default:
		return fmt.Errorf("unsupported output format '%s'", conf.Output.Format)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	conf, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	} else if err != nil {
		return nil, err
	}
	return conf, nil
}
