package cmd

import (
	"fmt"

	"github.com/SAP-F-2025/lingua-service/internal/config"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/filestore"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/SAP-F-2025/lingua-service/pkg"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a content file into PostgreSQL",
	Long:  "Validates a content file and upserts every course, lesson, paragraph, keyword, quiz question and exercise into the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := utils.NewLogger(cfg.Environment)

		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			path = cfg.ContentFile
		}

		store, err := filestore.LoadFile(path)
		if err != nil {
			return err
		}

		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database handle: %w", err)
		}
		defer sqlDB.Close()

		if err := pkg.MigrateContent(db); err != nil {
			return err
		}

		bundle := store.Bundle()
		if err := postgres.NewContentPostgreSQL(db).ImportBundle(cmd.Context(), bundle); err != nil {
			return err
		}

		logger.Info("Seeded content",
			"file", path,
			"courses", len(bundle.Courses),
			"lessons", len(bundle.Lessons),
			"paragraphs", len(bundle.Paragraphs),
			"keywords", len(bundle.Keywords))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("file", "", "content file to load, defaults to CONTENT_FILE")
}
