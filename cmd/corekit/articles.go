package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/corekit/core/frontmatter"
	"github.com/dmitrymomot/corekit/core/logger"
)

var articlesCmd = &cobra.Command{
	Use:   "articles [dir]",
	Short: "List the front matter of a directory of articles",
	Long: `Reads every markdown document under the directory (default taken from
COREKIT_ARTICLES_DIR) and prints its publishing metadata.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArticles,
}

func runArticles(cmd *cobra.Command, args []string) error {
	dir := cfg.ArticlesDir
	if len(args) > 0 {
		dir = args[0]
	}

	start := time.Now()
	docs, err := frontmatter.LoadDir(os.DirFS(dir), ".")
	if err != nil {
		return err
	}
	log.Debug("articles loaded",
		logger.Component("frontmatter"),
		logger.Path(dir),
		logger.Count("documents", len(docs)),
		logger.Elapsed(start),
	)

	out := cmd.OutOrStdout()
	title := color.New(color.Bold, color.FgHiWhite)
	meta := color.New(color.FgHiBlue)

	for _, doc := range docs {
		log.Debug("document parsed",
			logger.Path(doc.Path),
			logger.Group("meta",
				logger.Key("title", doc.Meta.Title),
				logger.Key("layout", doc.Meta.Layout),
				logger.Key("framework", doc.Meta.Framework),
			),
		)

		name := doc.Meta.Title
		if name == "" {
			name = doc.Path
		}
		fmt.Fprintln(out, title.Sprint(name))
		if doc.Meta.Framework != "" {
			fmt.Fprintf(out, "  %s %s\n", meta.Sprint("framework:"), doc.Meta.Framework)
		}
		if doc.Meta.Rating != 0 {
			fmt.Fprintf(out, "  %s %.1f\n", meta.Sprint("rating:"), doc.Meta.Rating)
		}
		if doc.Meta.Description != "" {
			fmt.Fprintf(out, "  %s %s\n", meta.Sprint("description:"), doc.Meta.Description)
		}
		fmt.Fprintf(out, "  %s %s\n", meta.Sprint("source:"), doc.Path)
	}
	fmt.Fprintf(out, "%d article(s)\n", len(docs))
	return nil
}
