// Command oyifa serves the bilingual blog and inspects its content store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/oyifa"
	"github.com/eringen/oyifa/content"
	"github.com/eringen/oyifa/views"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "oyifa",
		Short: "Bilingual (English/Arabic) blog over a hosted content store",
		Long: `oyifa serves a bilingual blog whose posts, authors and categories are
edited in a hosted content studio.

Configuration comes from the environment:
  SANITY_PROJECT_ID   content store project (required)
  SANITY_DATASET      dataset (default production)
  SANITY_API_VERSION  query API version (default 2024-01-01)
  SANITY_TOKEN        read token for private datasets
  SANITY_USE_CDN      query the CDN endpoint (default true)
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, ADDR, DEBUG`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newQueryCmd(),
		newAuditCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the oyifa version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "oyifa %s\n", version)
		},
	}
}

func newServeCmd() *cobra.Command {
	var staticDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := oyifa.LoadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := oyifa.New(cfg, views.Default(), oyifa.WithStaticDir(staticDir))
			return app.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "public", "Directory served under /public/")
	return cmd
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <all-posts|recent-posts|post SLUG|categories|category-posts SLUG>",
		Short: "Run one of the site's queries and print the result as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			result, err := runQuery(cmd.Context(), client, args)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	return cmd
}

func newClient() (*content.Client, oyifa.SiteConfig, error) {
	cfg, err := oyifa.LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	return content.NewClient(content.NewHTTPStore(cfg.Content)), cfg, nil
}

func runQuery(ctx context.Context, client *content.Client, args []string) (any, error) {
	arg := func() (string, error) {
		if len(args) < 2 {
			return "", fmt.Errorf("%s needs a slug argument", args[0])
		}
		return args[1], nil
	}
	switch args[0] {
	case "all-posts":
		return client.AllPosts(ctx)
	case "recent-posts":
		return client.RecentPosts(ctx)
	case "categories":
		return client.AllCategories(ctx)
	case "post":
		slug, err := arg()
		if err != nil {
			return nil, err
		}
		post, found, err := client.PostBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("no post with slug %q", slug)
		}
		return post, nil
	case "category-posts":
		slug, err := arg()
		if err != nil {
			return nil, err
		}
		cats, err := client.AllCategories(ctx)
		if err != nil {
			return nil, err
		}
		cat, ok := content.CategoryBySlug(cats, slug)
		if !ok {
			return nil, fmt.Errorf("no category with slug %q", slug)
		}
		return client.PostsByCategory(ctx, cat.ID)
	default:
		return nil, fmt.Errorf("unknown query %q", args[0])
	}
}
