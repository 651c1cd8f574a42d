package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"certstudy-service/internal/config"
	"certstudy-service/internal/domain"
	filecontent "certstudy-service/internal/infra/file"
)

// NewValidateCmd checks every content file in the content directory against
// the authoring invariants. Content defects are caught here, before deploy,
// never at render time.
func NewValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the static content tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dir := cfg.Content.Dir
			if dir == "" {
				dir = "content"
			}
			return validateContentDir(cmd.Context(), dir)
		},
	}
}

func validateContentDir(ctx context.Context, dir string) error {
	courses, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	loader := filecontent.NewContentLoader(dir)
	failures := 0
	checked := 0

	for _, course := range courses {
		if !course.IsDir() {
			continue
		}
		name := course.Name()

		modules, err := loader.LoadModuleIndex(ctx, name)
		if err != nil {
			log.Printf("%s: modules.json: %v", name, err)
			failures++
		} else if err := domain.ValidateModuleIndex(modules); err != nil {
			log.Printf("%s: %v", name, err)
			failures++
		}
		checked++

		entries, err := os.ReadDir(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read course dir %s: %w", name, err)
		}
		for _, entry := range entries {
			switch {
			case strings.HasSuffix(entry.Name(), "-quiz.json"):
				id := strings.TrimSuffix(entry.Name(), "-quiz.json")
				set, err := loader.LoadQuestionSet(ctx, name, id)
				if err == nil {
					err = domain.ValidateQuestionSet(set)
				}
				if err != nil {
					log.Printf("%s/%s: %v", name, entry.Name(), err)
					failures++
				}
				checked++
			case strings.HasSuffix(entry.Name(), "-summary.json"):
				id := strings.TrimSuffix(entry.Name(), "-summary.json")
				doc, err := loader.LoadSummary(ctx, name, id)
				if err == nil {
					err = domain.ValidateSummary(doc)
				}
				if err != nil {
					log.Printf("%s/%s: %v", name, entry.Name(), err)
					failures++
				}
				checked++
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d content files failed validation", failures, checked)
	}
	log.Printf("%d content files valid", checked)
	return nil
}
