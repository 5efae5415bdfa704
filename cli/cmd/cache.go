package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/cache"
	"github.com/world-monitor/desktop/cli/render"
)

// CacheResponse is the response for cache get.
type CacheResponse struct {
	Key     string          `json:"key"`
	Present bool            `json:"present"`
	Value   json.RawMessage `json:"value,omitempty"`
}

// CacheCommand returns the cache command with subcommands over the
// persistent JSON store.
func CacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and edit the persistent cache store",
		Subcommands: []*cli.Command{
			cacheGetCommand(),
			cacheSetCommand(),
			cachePathCommand(),
		},
	}
}

func cacheGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Read a cache entry",
		ArgsUsage: "<key>",
		Flags:     append(ReadOnlyFlags(), LayoutFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("cache key required", 1)
			}
			r, err := render.NewRenderer(c)
			if err != nil {
				return err
			}
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			key := c.Args().First()
			value, present, err := cache.New(s.CacheFilePath()).Get(key)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return r.Render(CacheResponse{Key: key, Present: present, Value: value})
		},
	}
}

func cacheSetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Write a cache entry (value must be valid JSON)",
		ArgsUsage: "<key> <json-value>",
		Flags:     append([]cli.Flag{ConfigFlag}, LayoutFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return cli.Exit("cache key and JSON value required", 1)
			}
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			key := c.Args().First()
			value := json.RawMessage(c.Args().Get(1))
			if err := cache.New(s.CacheFilePath()).Set(key, value); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintf(c.App.Writer, "stored %s\n", key)
			return nil
		},
	}
}

func cachePathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the cache store file location",
		Flags: append([]cli.Flag{ConfigFlag}, LayoutFlags()...),
		Action: func(c *cli.Context) error {
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, s.CacheFilePath())
			return nil
		},
	}
}
