// Command formcsv builds a sample record, stores it in a delimited file and
// prints every stored line as JSON-like text.
//
// Configuration is read from the environment (or a .env file):
//
//	FORMCSV_OUTPUT     document path (default Csv.txt)
//	FORMCSV_SEPARATOR  cell separator (default ;)
//	FORMCSV_EXPORT     optional export path (.csv, .tsv, .xlsx, .parquet, optionally compressed)
//	FORMCSV_SQLITE     optional SQLite DSN to import the document into
//	FORMCSV_TABLE      SQLite table name (default records)
//	FORMCSV_DEBUG      development logging
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/nao1215/formcsv"
	"github.com/nao1215/formcsv/domain/model"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "formcsv: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formcsv: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do on stderr sync failure

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("formcsv failed", zap.Error(err))
	}
}

// newLogger returns the production logger, or the development one when debug is set.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run writes the sample record, reads it back and runs the optional steps.
func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	separator, err := cfg.separator()
	if err != nil {
		return err
	}

	record, err := sampleRecord()
	if err != nil {
		return fmt.Errorf("failed to build sample record: %w", err)
	}

	writer := formcsv.New(cfg.Output, separator)
	writer.SetHeader(record.AttributeNames())
	if err := writer.AddLine(record.DataValues()); err != nil {
		return err
	}
	if err := writer.Save(); err != nil {
		return err
	}
	logger.Info("document saved", zap.String("path", cfg.Output), zap.Int("rows", len(writer.Rows())))

	converter, err := formcsv.NewJSONConverter(cfg.Output, formcsv.WithSeparator(separator))
	if err != nil {
		return err
	}
	for _, element := range converter.ConvertAll() {
		if element.Malformed() {
			logger.Warn("malformed line skipped", zap.Int("line", element.Line), zap.Error(element.Err))
			continue
		}
		logger.Info("line converted", zap.Int("line", element.Line), zap.String("json", element.JSON))
	}

	if cfg.Export != "" {
		if err := formcsv.Export(converter.Document(), cfg.Export, formcsv.ExportOptionsFromPath(cfg.Export)); err != nil {
			return err
		}
		logger.Info("document exported", zap.String("path", cfg.Export))
	}

	if cfg.SQLite != "" {
		if err := importSQLite(ctx, cfg, converter.Document()); err != nil {
			return err
		}
		logger.Info("document imported", zap.String("dsn", cfg.SQLite), zap.String("table", cfg.Table))
	}
	return nil
}

// importSQLite opens the configured database and imports doc into it.
func importSQLite(ctx context.Context, cfg config, doc *formcsv.Document) (err error) {
	db, err := sql.Open(formcsv.SQLiteDriverName, cfg.SQLite)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return formcsv.ImportSQLite(ctx, db, cfg.Table, doc)
}

// sampleRecord builds the John Doe record.
func sampleRecord() (*model.Record, error) {
	record := model.NewRecord()

	if err := record.SetName("John"); err != nil {
		return nil, err
	}
	if err := record.SetSurname("Doe"); err != nil {
		return nil, err
	}
	if err := record.SetBornDate(time.Date(2000, time.February, 1, 0, 0, 0, 0, time.Local)); err != nil {
		return nil, err
	}
	record.SetAddress(model.NewAddress("Via Garibaldi", "57", "milano", "20121"))
	if err := record.SetPhoneNumber("123456789"); err != nil {
		return nil, err
	}
	if err := record.SetEmail("john.doe@example.com"); err != nil {
		return nil, err
	}
	if err := record.SetGender('m'); err != nil {
		return nil, err
	}
	record.SetHobby("Play Football")
	record.SetWork("Writer")
	return record, nil
}
