package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/oyifa/content"
)

func newAuditCmd() *cobra.Command {
	var (
		concurrency int
		strict      bool
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List fields that show English text on Arabic pages",
		Long: `Fetch every post, author and category and report each bilingual field
whose Arabic text is missing (Arabic pages fall back to English), plus any
document that fails validation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			report, err := audit(cmd.Context(), client, concurrency)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if strict && (len(report.Missing) > 0 || len(report.Invalid) > 0) {
				return fmt.Errorf("%d missing translations, %d invalid documents", len(report.Missing), len(report.Invalid))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Maximum concurrent post fetches")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when anything is reported")
	return cmd
}

// audit loads full documents (the list projection carries no body or SEO
// fields) and runs content.AuditTranslations over them.
func audit(ctx context.Context, client *content.Client, concurrency int) (content.Report, error) {
	posts, err := client.AllPosts(ctx)
	if err != nil {
		return content.Report{}, err
	}
	cats, err := client.AllCategories(ctx)
	if err != nil {
		return content.Report{}, err
	}

	full := make([]content.Post, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, p := range posts {
		g.Go(func() error {
			post, found, err := client.PostBySlug(gctx, p.Slug.Current)
			if err != nil {
				return fmt.Errorf("post %s: %w", p.Slug.Current, err)
			}
			if !found {
				post = p
			}
			full[i] = post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return content.Report{}, err
	}
	return content.AuditTranslations(full, nil, cats), nil
}

func printReport(w io.Writer, r content.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(r.Missing) == 0 {
		fmt.Fprintln(tw, "No missing Arabic translations.")
	} else {
		fmt.Fprintln(tw, "TYPE\tSLUG\tFIELD")
		for _, m := range r.Missing {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", m.DocType, slugOrID(m.Slug, m.ID), m.Field)
		}
	}
	for _, inv := range r.Invalid {
		fmt.Fprintf(tw, "invalid %s\t%s\t%s\n", inv.DocType, slugOrID(inv.Slug, inv.ID), strings.Join(inv.Fields, ", "))
	}
	tw.Flush()
}

func slugOrID(slug, id string) string {
	if slug != "" {
		return slug
	}
	return id
}
