package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amcdental/dentalhub-backend/internal/app"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

var (
	seedFilePath string
	seedDryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed_tracks",
	Short: "Load content and tracks from a YAML file",
	Long: `Load articles, lessons, tools and tracks from a YAML seed file.

Tracks reference content by the "key" given to each content entry.

Examples:
  seed_tracks --file seeds/endo.yaml
  seed_tracks --file seeds/endo.yaml --dry-run`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFilePath, "file", "f", "", "seed YAML file")
	rootCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "validate the file without writing")
	_ = rootCmd.MarkFlagRequired("file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", seedFilePath, err)
	}
	seed, err := parseSeedFile(raw)
	if err != nil {
		return err
	}
	if seedDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "dry-run: %d articles, %d lessons, %d tools, %d tracks\n",
			len(seed.Articles), len(seed.Lessons), len(seed.Tools), len(seed.Tracks))
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	application, err := app.New(ctx)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer application.Close()

	if err := run(ctx, application.Services, seed); err != nil {
		application.Log.Error("seed failed", "error", err)
		return err
	}
	return nil
}

func run(ctx context.Context, s app.Services, seed *seedFile) error {
	keys := map[string]tracks.ItemRef{}
	remember := func(key string, ref tracks.ItemRef) {
		if key = strings.TrimSpace(key); key != "" {
			keys[key] = ref
		}
	}

	for _, a := range seed.Articles {
		row, err := s.Catalog.CreateArticle(ctx, services.CreateArticleInput{
			Title: a.Title, Slug: a.Slug, Summary: a.Summary, Category: a.Category, FileURL: a.FileURL,
		})
		if err != nil {
			return fmt.Errorf("article %q: %w", a.Title, err)
		}
		remember(a.Key, tracks.ItemRef{Type: tracks.ItemTypeArticle, ID: row.ID})
	}
	for _, l := range seed.Lessons {
		row, err := s.Catalog.CreateLesson(ctx, services.CreateLessonInput{
			Title: l.Title, Description: l.Description, VideoURL: l.VideoURL, Duration: l.Duration,
		})
		if err != nil {
			return fmt.Errorf("lesson %q: %w", l.Title, err)
		}
		remember(l.Key, tracks.ItemRef{Type: tracks.ItemTypeLesson, ID: row.ID})
	}
	for _, t := range seed.Tools {
		row, err := s.Catalog.CreateTool(ctx, services.CreateToolInput{
			Title: t.Title, Description: t.Description, Category: t.Category, FileURL: t.FileURL,
		})
		if err != nil {
			return fmt.Errorf("tool %q: %w", t.Title, err)
		}
		remember(t.Key, tracks.ItemRef{Type: tracks.ItemTypeTool, ID: row.ID})
	}

	for _, t := range seed.Tracks {
		in, err := t.trackInput(keys)
		if err != nil {
			return err
		}
		view, err := s.Tracks.CreateTrack(ctx, in)
		if err != nil {
			return fmt.Errorf("track %q: %w", t.Title, err)
		}
		fmt.Printf("track %s %q (%d items)\n", view.ID, view.Title, len(view.Items))
	}
	return nil
}
